// ABOUTME: Bookings screen listing the user's bookings with status badges
// ABOUTME: Offers only the transitions the backend would accept for each booking

package bookings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
	"github.com/skillserve/marketplace-cli/internal/tui/widgets"
)

// TransitionRequestedMsg is sent when the user applies a status change
type TransitionRequestedMsg struct {
	BookingID int64
	Status    string
}

// RateRequestedMsg is sent when a customer rates a completed booking
type RateRequestedMsg struct {
	Booking client.Booking
}

// RefreshRequestedMsg asks the app to reload the booking list
type RefreshRequestedMsg struct{}

// CancelledMsg is sent when the user leaves the screen
type CancelledMsg struct{}

// Bookings is the booking list screen
type Bookings struct {
	identity *session.Identity
	list     []client.Booking
	cursor   int
	err      string
	notice   string
	busy     bool
	width    int
}

// New creates the bookings screen for the given identity
func New(identity *session.Identity) *Bookings {
	return &Bookings{identity: identity}
}

// SetBookings replaces the list and clears any in-flight state
func (b *Bookings) SetBookings(list []client.Booking) {
	b.list = list
	b.busy = false
	b.err = ""
	if b.cursor >= len(list) {
		b.cursor = 0
	}
}

// SetError shows an error and clears the in-flight state
func (b *Bookings) SetError(err string) {
	b.err = err
	b.busy = false
}

// SetNotice shows a transient informational line
func (b *Bookings) SetNotice(notice string) {
	b.notice = notice
}

// Init implements tea.Model
func (b *Bookings) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (b *Bookings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if b.busy {
			return b, nil
		}
		b.notice = ""

		switch msg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.list)-1 {
				b.cursor++
			}
		case "r":
			b.busy = true
			return b, func() tea.Msg { return RefreshRequestedMsg{} }
		case "a":
			return b.transition(client.BookingAccepted)
		case "c":
			return b.transition(client.BookingCompleted)
		case "x":
			return b.transition(client.BookingCancelled)
		case "s":
			return b.requestRating()
		case "esc", "b":
			return b, func() tea.Msg { return CancelledMsg{} }
		}
	}

	return b, nil
}

// transition emits a status change only when the backend would allow it
// for this identity, so the key silently no-ops elsewhere.
func (b *Bookings) transition(status string) (tea.Model, tea.Cmd) {
	if b.cursor >= len(b.list) {
		return b, nil
	}
	booking := b.list[b.cursor]

	allowed := false
	for _, s := range client.AllowedBookingActions(booking, b.identity) {
		if s == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return b, nil
	}

	b.busy = true
	id := booking.ID
	return b, func() tea.Msg {
		return TransitionRequestedMsg{BookingID: id, Status: status}
	}
}

func (b *Bookings) requestRating() (tea.Model, tea.Cmd) {
	if b.cursor >= len(b.list) {
		return b, nil
	}
	booking := b.list[b.cursor]

	// Only the customer rates, and only after completion
	if b.identity == nil || booking.CustomerID != b.identity.ID || booking.Status != client.BookingCompleted {
		return b, nil
	}

	return b, func() tea.Msg { return RateRequestedMsg{Booking: booking} }
}

// View implements tea.Model
func (b *Bookings) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("My bookings"))
	sb.WriteString("\n\n")

	if b.err != "" {
		sb.WriteString(styles.StatusCritical.Render("Error: " + b.err))
		sb.WriteString("\n\n")
	}
	if b.notice != "" {
		sb.WriteString(styles.StatusOK.Render(b.notice))
		sb.WriteString("\n\n")
	}

	if len(b.list) == 0 {
		sb.WriteString(styles.Subtitle.Render("No bookings yet."))
		return sb.String()
	}

	for i, bk := range b.list {
		cursor := "  "
		if i == b.cursor {
			cursor = styles.KeyStyle.Render("> ")
		}

		service := bk.ServiceType
		if bk.Subject != "" {
			service = fmt.Sprintf("%s (%s)", bk.ServiceType, bk.Subject)
		}

		side := "customer"
		if b.identity != nil && bk.ProviderID == b.identity.ID {
			side = "provider"
		}

		sb.WriteString(fmt.Sprintf("%s#%-4d %-24s %8.0f  %s  %s\n",
			cursor, bk.ID,
			service,
			bk.TotalPrice,
			widgets.BookingBadge(bk.Status),
			styles.Subtitle.Render(side),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render(b.helpLine()))
	return sb.String()
}

// helpLine lists only the keys valid for the selected booking
func (b *Bookings) helpLine() string {
	parts := []string{}

	if b.cursor < len(b.list) {
		booking := b.list[b.cursor]
		for _, s := range client.AllowedBookingActions(booking, b.identity) {
			switch s {
			case client.BookingAccepted:
				parts = append(parts, "a accept")
			case client.BookingCompleted:
				parts = append(parts, "c complete")
			case client.BookingCancelled:
				parts = append(parts, "x cancel")
			}
		}
		if b.identity != nil && booking.CustomerID == b.identity.ID && booking.Status == client.BookingCompleted {
			parts = append(parts, "s rate")
		}
	}

	parts = append(parts, "r refresh", "Esc back")
	return strings.Join(parts, " · ")
}
