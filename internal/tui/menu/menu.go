// ABOUTME: Main menu listing the actions available to the logged-in user
// ABOUTME: Customers get search and chat, providers get profile management

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/tui/icons"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
)

// Action identifies a menu entry
type Action int

const (
	ActionSearch Action = iota
	ActionBookings
	ActionChat
	ActionProfile
	ActionCreateProfile
	ActionLogout
	ActionQuit
)

// ActionSelectedMsg is sent when the user picks a menu entry
type ActionSelectedMsg struct {
	Action Action
}

// CancelledMsg is sent when the user quits from the menu
type CancelledMsg struct{}

type entry struct {
	icon   icons.Icon
	label  string
	action Action
}

// Menu is the main action menu
type Menu struct {
	identity *session.Identity
	entries  []entry
	cursor   int
	width    int
}

// New builds the menu for the given identity. The entries differ by
// role: only customers book and rate, only providers manage profiles.
func New(identity *session.Identity) *Menu {
	var entries []entry

	if identity != nil && identity.IsProvider() {
		entries = append(entries,
			entry{icons.Booking, "My bookings", ActionBookings},
			entry{icons.User, "My profile", ActionProfile},
			entry{icons.Document, "Create profile", ActionCreateProfile},
		)
	} else {
		entries = append(entries,
			entry{icons.Search, "Search providers", ActionSearch},
			entry{icons.Booking, "My bookings", ActionBookings},
			entry{icons.Chat, "Chat with assistant", ActionChat},
		)
	}

	entries = append(entries,
		entry{icons.Logout, "Log out", ActionLogout},
		entry{icons.Quit, "Quit", ActionQuit},
	)

	return &Menu{identity: identity, entries: entries}
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			action := m.entries[m.cursor].action
			return m, func() tea.Msg { return ActionSelectedMsg{Action: action} }
		case "q", "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	return m, nil
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var b strings.Builder

	if m.identity != nil {
		b.WriteString(styles.Title.Render(fmt.Sprintf("Welcome, %s", m.identity.Name)))
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s · trust score %.0f", m.identity.Role, m.identity.TrustScore)))
		b.WriteString("\n\n")
	}

	for i, e := range m.entries {
		cursor := "  "
		label := e.label
		if i == m.cursor {
			cursor = styles.KeyStyle.Render("> ")
			label = styles.ValueStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, e.icon.String(), label))
	}

	return b.String()
}
