// ABOUTME: Tests for the provider search screen
// ABOUTME: Exercises filter submission, result navigation, and booking selection

package providers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/client"
)

func testTypes() *client.ServiceTypes {
	return &client.ServiceTypes{
		HomeServices:  []string{"cleaning", "plumber"},
		TutorSubjects: []string{"mathematics"},
	}
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitFilterBuildsServiceQuery(t *testing.T) {
	p := New(testTypes())
	p.category = prefixService + "cleaning"

	_, cmd := p.submitFilter()
	require.NotNil(t, cmd)

	msg := cmd().(SearchSubmittedMsg)
	assert.Equal(t, "cleaning", msg.Query.ServiceType)
	assert.Empty(t, msg.Query.Subject)
}

func TestSubmitFilterBuildsSubjectQuery(t *testing.T) {
	p := New(testTypes())
	p.category = prefixSubject + "mathematics"

	_, cmd := p.submitFilter()
	require.NotNil(t, cmd)

	msg := cmd().(SearchSubmittedMsg)
	assert.Equal(t, "mathematics", msg.Query.Subject)
	assert.Empty(t, msg.Query.ServiceType)
}

func TestBookSelectedProvider(t *testing.T) {
	p := New(testTypes())
	p.SetResults([]client.Provider{
		{ID: 1, Name: "Ravi", Role: "worker", ServiceType: "cleaning"},
		{ID: 2, Name: "Meena", Role: "worker", ServiceType: "cleaning"},
	})

	p.Update(key("j"))
	_, cmd := p.Update(key("enter"))
	require.NotNil(t, cmd)

	msg := cmd().(BookRequestedMsg)
	assert.Equal(t, int64(2), msg.Provider.ID)
}

func TestEmptyResultsView(t *testing.T) {
	p := New(testTypes())
	p.SetResults(nil)

	assert.Contains(t, p.View(), "No approved providers")
}

func TestEscFromResultsCancels(t *testing.T) {
	p := New(testTypes())
	p.SetResults([]client.Provider{{ID: 1, Name: "Ravi"}})

	_, cmd := p.Update(key("esc"))
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelledMsg)
	assert.True(t, ok)
}
