// ABOUTME: Assistant chat screen with conversation history and input line
// ABOUTME: Replies may include provider recommendations the user can book

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
	"github.com/skillserve/marketplace-cli/internal/tui/widgets"
)

// SendMsg is sent when the user submits a chat message
type SendMsg struct {
	Message string
	History []client.ChatMessage
}

// BookRequestedMsg is sent when the user books a recommended provider
type BookRequestedMsg struct {
	Provider client.RecommendedProvider
}

// CancelledMsg is sent when the user leaves the screen
type CancelledMsg struct{}

// Chat is the assistant conversation screen
type Chat struct {
	history     []client.ChatMessage
	recommended []client.RecommendedProvider
	input       textinput.Model
	waiting     bool
	err         string
	width       int
	height      int
}

// New creates the chat screen
func New() *Chat {
	ti := textinput.New()
	ti.Placeholder = "Describe what you need..."
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return &Chat{input: ti}
}

// Init implements tea.Model
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CancelledMsg{} }
		case "enter":
			return c.send()
		}

		// Digit keys book a recommended provider when any are shown
		if len(c.recommended) > 0 && len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
			idx := int(msg.String()[0] - '1')
			if idx < len(c.recommended) && c.input.Value() == "" {
				provider := c.recommended[idx]
				return c, func() tea.Msg { return BookRequestedMsg{Provider: provider} }
			}
		}

		if c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Chat) send() (tea.Model, tea.Cmd) {
	if c.waiting {
		return c, nil
	}

	message := strings.TrimSpace(c.input.Value())
	if message == "" {
		return c, nil
	}

	// Snapshot the history before the new turn is appended; the backend
	// wants prior turns only.
	history := make([]client.ChatMessage, len(c.history))
	copy(history, c.history)

	c.history = append(c.history, client.ChatMessage{Role: client.ChatRoleUser, Content: message})
	c.input.SetValue("")
	c.waiting = true
	c.err = ""

	return c, func() tea.Msg {
		return SendMsg{Message: message, History: history}
	}
}

// SetReply appends the assistant's answer and shows recommendations
func (c *Chat) SetReply(reply *client.ChatReply) {
	c.waiting = false
	if reply == nil {
		return
	}
	c.history = append(c.history, client.ChatMessage{Role: client.ChatRoleAssistant, Content: reply.Reply})
	c.recommended = reply.RecommendedProviders
}

// SetError shows an error and re-enables the input
func (c *Chat) SetError(err string) {
	c.waiting = false
	c.err = err
}

// History returns the conversation so far
func (c *Chat) History() []client.ChatMessage {
	return c.history
}

// View implements tea.Model
func (c *Chat) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Assistant"))
	b.WriteString("\n\n")

	if len(c.history) == 0 {
		b.WriteString(styles.Subtitle.Render("Tell the assistant what you need and it will match you with providers."))
		b.WriteString("\n\n")
	}

	for _, m := range c.history {
		if m.Role == client.ChatRoleUser {
			b.WriteString(styles.ChatUser.Render("You: "))
		} else {
			b.WriteString(styles.ChatAssistant.Render("Assistant: "))
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}

	if c.waiting {
		b.WriteString(styles.Subtitle.Render("Thinking..."))
		b.WriteString("\n")
	}

	if c.err != "" {
		b.WriteString(styles.StatusCritical.Render("Error: " + c.err))
		b.WriteString("\n")
	}

	if len(c.recommended) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("Recommended providers (press number to book):"))
		b.WriteString("\n")
		for i, p := range c.recommended {
			b.WriteString(fmt.Sprintf("  %s %-20s %-14s %s %s  %s\n",
				styles.KeyStyle.Render(fmt.Sprintf("%d.", i+1)),
				p.Name,
				p.ServiceType,
				styles.Stars(p.Rating),
				widgets.TrustBadge(p.TrustScore),
				styles.ValueStyle.Render(fmt.Sprintf("%.0f", p.Price)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Enter send · Esc back"))
	return b.String()
}
