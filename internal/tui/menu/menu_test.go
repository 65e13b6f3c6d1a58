// ABOUTME: Tests for the role-aware main menu
// ABOUTME: Checks entry sets per role and selection messages

package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/session"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCustomerEntries(t *testing.T) {
	m := New(&session.Identity{Name: "Asha", Role: session.RoleCustomer})

	view := m.View()
	assert.Contains(t, view, "Search providers")
	assert.Contains(t, view, "Chat with assistant")
	assert.NotContains(t, view, "Create profile")
}

func TestProviderEntries(t *testing.T) {
	m := New(&session.Identity{Name: "Равил", Role: session.RoleWorker})

	view := m.View()
	assert.Contains(t, view, "My profile")
	assert.Contains(t, view, "Create profile")
	assert.NotContains(t, view, "Search providers")
}

func TestSelectionEmitsAction(t *testing.T) {
	m := New(&session.Identity{Name: "Asha", Role: session.RoleCustomer})

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ActionSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, ActionSearch, msg.Action)
}

func TestNavigationMovesCursor(t *testing.T) {
	m := New(&session.Identity{Name: "Asha", Role: session.RoleCustomer})

	m.Update(keyMsg("j"))
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd().(ActionSelectedMsg)
	assert.Equal(t, ActionBookings, msg.Action)
}

func TestQuitEmitsCancelled(t *testing.T) {
	m := New(&session.Identity{Name: "Asha", Role: session.RoleCustomer})

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelledMsg)
	assert.True(t, ok)
}
