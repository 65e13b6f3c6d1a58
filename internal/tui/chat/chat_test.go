// ABOUTME: Tests for the assistant chat screen
// ABOUTME: Covers history snapshots, in-flight latch, and recommendation booking

package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/client"
)

func typeAndSend(t *testing.T, c *Chat, text string) tea.Cmd {
	t.Helper()
	c.input.SetValue(text)
	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestSendSnapshotsPriorHistory(t *testing.T) {
	c := New()

	cmd := typeAndSend(t, c, "tap is leaking")
	require.NotNil(t, cmd)

	msg := cmd().(SendMsg)
	assert.Equal(t, "tap is leaking", msg.Message)
	assert.Empty(t, msg.History, "first turn sends no prior history")

	c.SetReply(&client.ChatReply{Reply: "Sounds like a plumber job."})

	cmd = typeAndSend(t, c, "how much will it cost?")
	require.NotNil(t, cmd)

	msg = cmd().(SendMsg)
	require.Len(t, msg.History, 2)
	assert.Equal(t, client.ChatRoleUser, msg.History[0].Role)
	assert.Equal(t, client.ChatRoleAssistant, msg.History[1].Role)
}

func TestEmptyMessageNotSent(t *testing.T) {
	c := New()

	cmd := typeAndSend(t, c, "   ")
	assert.Nil(t, cmd)
}

func TestWaitingBlocksSecondSend(t *testing.T) {
	c := New()

	require.NotNil(t, typeAndSend(t, c, "first"))
	assert.Nil(t, typeAndSend(t, c, "second"))

	c.SetError("request timed out")
	assert.NotNil(t, typeAndSend(t, c, "second"))
}

func TestNumberKeyBooksRecommendation(t *testing.T) {
	c := New()
	c.SetReply(&client.ChatReply{
		Reply: "Here are some plumbers.",
		RecommendedProviders: []client.RecommendedProvider{
			{ID: 4, Name: "Ravi", ServiceType: "plumber"},
			{ID: 7, Name: "Meena", ServiceType: "plumber"},
		},
	})

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.NotNil(t, cmd)

	msg := cmd().(BookRequestedMsg)
	assert.Equal(t, int64(7), msg.Provider.ID)
}

func TestEscCancels(t *testing.T) {
	c := New()

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelledMsg)
	assert.True(t, ok)
}
