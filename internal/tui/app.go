// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state, session guards, and routes input to child components

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/debuglog"
	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/storage"
	"github.com/skillserve/marketplace-cli/internal/tui/auth"
	"github.com/skillserve/marketplace-cli/internal/tui/bookings"
	"github.com/skillserve/marketplace-cli/internal/tui/chat"
	"github.com/skillserve/marketplace-cli/internal/tui/filepicker"
	"github.com/skillserve/marketplace-cli/internal/tui/forms"
	"github.com/skillserve/marketplace-cli/internal/tui/icons"
	"github.com/skillserve/marketplace-cli/internal/tui/menu"
	"github.com/skillserve/marketplace-cli/internal/tui/providers"
	"github.com/skillserve/marketplace-cli/internal/tui/recentfiles"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
	"github.com/skillserve/marketplace-cli/internal/tui/widgets"
	"github.com/skillserve/marketplace-cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenMenu
	ScreenSearch
	ScreenBookings
	ScreenChat
	ScreenWizard
	ScreenDocPicker
	ScreenRate
	ScreenProfile
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
)

// docStage tracks which document the picker is currently collecting
type docStage int

const (
	docNone docStage = iota
	docIdentity
	docQualification
)

// sessionExpiredMsg is delivered when the request pipeline hits a 401
type sessionExpiredMsg struct{}

// authResultMsg is sent when login or registration completes
type authResultMsg struct {
	result *client.AuthResult
	err    error
}

// typesLoadedMsg is sent when the category catalog is loaded
type typesLoadedMsg struct {
	types *client.ServiceTypes
	next  Screen
	err   error
}

// searchResultsMsg is sent when a provider search completes
type searchResultsMsg struct {
	results []client.Provider
	err     error
}

// bookingsLoadedMsg is sent when the booking list is loaded
type bookingsLoadedMsg struct {
	list []client.Booking
	err  error
}

// bookingUpdatedMsg is sent when a status transition completes
type bookingUpdatedMsg struct {
	booking *client.Booking
	err     error
}

// bookingCreatedMsg is sent when a new booking is created
type bookingCreatedMsg struct {
	booking *client.Booking
	err     error
}

// chatReplyMsg is sent when the assistant answers
type chatReplyMsg struct {
	reply *client.ChatReply
	err   error
}

// profileLoadedMsg is sent when the provider profile is fetched
type profileLoadedMsg struct {
	worker *client.WorkerProfile
	tutor  *client.TutorProfile
	err    error
}

// profileCreatedMsg is sent when profile submission completes
type profileCreatedMsg struct {
	worker *client.WorkerProfile
	tutor  *client.TutorProfile
	err    error
}

// ratingSubmittedMsg is sent when a rating is stored
type ratingSubmittedMsg struct {
	err error
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	session *session.Store
	screen  Screen
	width   int
	height  int
	err     error
	notice  string
	types   *client.ServiceTypes

	// Child models
	authScreen   *auth.Auth
	menuScreen   *menu.Menu
	searchScreen *providers.Providers
	bookScreen   *bookings.Bookings
	chatScreen   *chat.Chat
	wizardScreen *wizard.Wizard
	docPicker    *filepicker.FilePicker

	// Profile creation in flight: collected input waiting for documents
	pendingWorker *client.WorkerProfileInput
	pendingTutor  *client.TutorProfileInput
	docStage      docStage

	// Rating form state
	ratingForm    *huh.Form
	ratingTarget  client.Booking
	ratingScore   string
	ratingComment string

	// Profile view state
	workerProfile *client.WorkerProfile
	tutorProfile  *client.TutorProfile

	// Recent documents for the picker
	recentDocs *recentfiles.RecentFiles
}

// New creates a new TUI application. The session guard runs here: a
// stored identity lands on the menu, everyone else on the login screen.
func New(apiClient *client.Client, sess *session.Store, store storage.Store) *App {
	a := &App{
		client:     apiClient,
		session:    sess,
		recentDocs: recentfiles.New(store),
	}

	if id, loading := sess.Current(); !loading && id != nil {
		a.screen = ScreenMenu
		a.menuScreen = menu.New(id)
	} else {
		a.screen = ScreenAuth
		a.authScreen = auth.New(auth.ModeLogin)
	}

	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenAuth && a.authScreen != nil {
		return a.authScreen.Init()
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forwardToChild(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forwardToChild(msg)

	case sessionExpiredMsg:
		return a.handleSessionExpired()

	case auth.LoginSubmittedMsg:
		return a, a.login(msg.Email, msg.Password)

	case auth.RegisterSubmittedMsg:
		return a, a.register(msg)

	case auth.CancelledMsg:
		return a, tea.Quit

	case authResultMsg:
		return a.handleAuthResult(msg)

	case menu.ActionSelectedMsg:
		return a.handleMenuAction(msg.Action)

	case menu.CancelledMsg:
		return a, tea.Quit

	case typesLoadedMsg:
		return a.handleTypesLoaded(msg)

	case providers.SearchSubmittedMsg:
		return a, a.search(msg.Query)

	case searchResultsMsg:
		if a.searchScreen != nil {
			if msg.err != nil {
				a.searchScreen.SetError(msg.err.Error())
			} else {
				a.searchScreen.SetResults(msg.results)
			}
		}
		return a, nil

	case providers.BookRequestedMsg:
		return a, a.bookProvider(msg.Provider)

	case providers.CancelledMsg:
		return a.toMenu()

	case chat.BookRequestedMsg:
		return a, a.bookRecommended(msg.Provider)

	case chat.SendMsg:
		return a, a.sendChat(msg)

	case chat.CancelledMsg:
		return a.toMenu()

	case chatReplyMsg:
		if a.chatScreen != nil {
			if msg.err != nil {
				a.chatScreen.SetError(msg.err.Error())
			} else {
				a.chatScreen.SetReply(msg.reply)
			}
		}
		return a, nil

	case bookings.RefreshRequestedMsg:
		return a, a.loadBookings()

	case bookings.TransitionRequestedMsg:
		return a, a.updateBooking(msg.BookingID, msg.Status)

	case bookings.RateRequestedMsg:
		return a.openRatingForm(msg.Booking)

	case bookings.CancelledMsg:
		return a.toMenu()

	case bookingsLoadedMsg:
		if a.bookScreen != nil {
			if msg.err != nil {
				a.bookScreen.SetError(msg.err.Error())
			} else {
				a.bookScreen.SetBookings(msg.list)
			}
		}
		return a, nil

	case bookingUpdatedMsg:
		if msg.err != nil {
			if a.bookScreen != nil {
				a.bookScreen.SetError(msg.err.Error())
			}
			return a, nil
		}
		if a.bookScreen != nil {
			a.bookScreen.SetNotice(fmt.Sprintf("Booking #%d is now %s", msg.booking.ID, msg.booking.Status))
		}
		return a, a.loadBookings()

	case bookingCreatedMsg:
		return a.handleBookingCreated(msg)

	case wizard.WizardCompleteMsg:
		return a.handleWizardComplete(msg)

	case wizard.WizardCancelledMsg:
		return a.toMenu()

	case filepicker.DocumentSelectedMsg:
		return a.handleDocumentSelected(msg.Path)

	case filepicker.SkippedMsg:
		return a.handleDocumentSelected("")

	case filepicker.CancelledMsg:
		a.pendingWorker = nil
		a.pendingTutor = nil
		a.docStage = docNone
		return a.toMenu()

	case profileCreatedMsg:
		return a.handleProfileCreated(msg)

	case profileLoadedMsg:
		return a.handleProfileLoaded(msg)

	case ratingSubmittedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a.toBookings()
		}
		a.notice = "Rating submitted, thank you"
		return a.toBookings()

	default:
		// Forward unknown messages to form-bearing children (needed for
		// huh internals like blink and validation ticks)
		return a, a.forwardToChild(msg)
	}
}

// forwardToChild routes a message to the active screen's model
func (a *App) forwardToChild(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenAuth:
		if a.authScreen == nil {
			return nil
		}
		model, cmd := a.authScreen.Update(msg)
		a.authScreen = model.(*auth.Auth)
		return cmd

	case ScreenMenu:
		if a.menuScreen == nil {
			return nil
		}
		model, cmd := a.menuScreen.Update(msg)
		a.menuScreen = model.(*menu.Menu)
		return cmd

	case ScreenSearch:
		if a.searchScreen == nil {
			return nil
		}
		model, cmd := a.searchScreen.Update(msg)
		a.searchScreen = model.(*providers.Providers)
		return cmd

	case ScreenBookings:
		if a.bookScreen == nil {
			return nil
		}
		model, cmd := a.bookScreen.Update(msg)
		a.bookScreen = model.(*bookings.Bookings)
		return cmd

	case ScreenChat:
		if a.chatScreen == nil {
			return nil
		}
		model, cmd := a.chatScreen.Update(msg)
		a.chatScreen = model.(*chat.Chat)
		return cmd

	case ScreenWizard:
		if a.wizardScreen == nil {
			return nil
		}
		model, cmd := a.wizardScreen.Update(msg)
		a.wizardScreen = model.(*wizard.Wizard)
		return cmd

	case ScreenDocPicker:
		if a.docPicker == nil {
			return nil
		}
		model, cmd := a.docPicker.Update(msg)
		a.docPicker = model.(*filepicker.FilePicker)
		return cmd

	case ScreenRate:
		return a.updateRatingForm(msg)

	case ScreenProfile:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "b", "q":
				if id, _ := a.session.Current(); id != nil {
					a.screen = ScreenMenu
					a.menuScreen = menu.New(id)
				}
			}
		}
		return nil
	}

	return nil
}

// handleSessionExpired is the 401 guard: storage is already cleared by
// the pipeline, so drop the in-memory session and land on login.
func (a *App) handleSessionExpired() (tea.Model, tea.Cmd) {
	debuglog.Logger().Warn().Msg("session expired, routing to login")
	a.session.Clear()
	a.resetChildren()
	a.screen = ScreenAuth
	a.authScreen = auth.New(auth.ModeLogin)
	cmd := a.authScreen.SetError("Your session expired. Please log in again.")
	return a, cmd
}

func (a *App) resetChildren() {
	a.menuScreen = nil
	a.searchScreen = nil
	a.bookScreen = nil
	a.chatScreen = nil
	a.wizardScreen = nil
	a.docPicker = nil
	a.ratingForm = nil
	a.pendingWorker = nil
	a.pendingTutor = nil
	a.docStage = docNone
	a.workerProfile = nil
	a.tutorProfile = nil
	a.err = nil
	a.notice = ""
}

func (a *App) toMenu() (tea.Model, tea.Cmd) {
	id, _ := a.session.Current()
	if id == nil {
		a.screen = ScreenAuth
		a.authScreen = auth.New(auth.ModeLogin)
		return a, a.authScreen.Init()
	}
	a.screen = ScreenMenu
	a.menuScreen = menu.New(id)
	return a, nil
}

func (a *App) toBookings() (tea.Model, tea.Cmd) {
	id, _ := a.session.Current()
	a.screen = ScreenBookings
	a.bookScreen = bookings.New(id)
	if a.notice != "" {
		a.bookScreen.SetNotice(a.notice)
		a.notice = ""
	}
	return a, a.loadBookings()
}

// login calls the backend and commits the session on success
func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.Login(context.Background(), email, password)
		if err != nil {
			return authResultMsg{err: err}
		}
		if err := a.session.Commit(&result.User, result.AccessToken); err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{result: result}
	}
}

func (a *App) register(msg auth.RegisterSubmittedMsg) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.Register(context.Background(), client.RegisterInput{
			Name:     msg.Name,
			Email:    msg.Email,
			Password: msg.Password,
			Role:     msg.Role,
		})
		if err != nil {
			return authResultMsg{err: err}
		}
		if err := a.session.Commit(&result.User, result.AccessToken); err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{result: result}
	}
}

func (a *App) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if a.authScreen != nil {
			return a, a.authScreen.SetError(msg.err.Error())
		}
		return a, nil
	}
	return a.toMenu()
}

func (a *App) handleMenuAction(action menu.Action) (tea.Model, tea.Cmd) {
	a.err = nil

	switch action {
	case menu.ActionSearch:
		return a, a.loadTypes(ScreenSearch)

	case menu.ActionBookings:
		return a.toBookings()

	case menu.ActionChat:
		a.screen = ScreenChat
		a.chatScreen = chat.New()
		return a, a.chatScreen.Init()

	case menu.ActionProfile:
		a.screen = ScreenProfile
		a.workerProfile = nil
		a.tutorProfile = nil
		a.err = nil
		return a, a.loadProfile()

	case menu.ActionCreateProfile:
		return a, a.loadTypes(ScreenWizard)

	case menu.ActionLogout:
		a.session.Clear()
		a.resetChildren()
		a.screen = ScreenAuth
		a.authScreen = auth.New(auth.ModeLogin)
		return a, a.authScreen.Init()

	case menu.ActionQuit:
		return a, tea.Quit
	}

	return a, nil
}

// loadTypes fetches the category catalog, then opens the screen that
// needed it
func (a *App) loadTypes(next Screen) tea.Cmd {
	if a.types != nil {
		types := a.types
		return func() tea.Msg { return typesLoadedMsg{types: types, next: next} }
	}
	return func() tea.Msg {
		types, err := a.client.ServiceTypes(context.Background())
		return typesLoadedMsg{types: types, next: next, err: err}
	}
}

func (a *App) handleTypesLoaded(msg typesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		debuglog.Error("load service types", msg.err)
		a.err = msg.err
		return a.toMenu()
	}
	a.types = msg.types

	switch msg.next {
	case ScreenWizard:
		id, _ := a.session.Current()
		if id == nil || !id.IsProvider() {
			return a.toMenu()
		}
		a.screen = ScreenWizard
		a.wizardScreen = wizard.New(id.Role, a.types)
		return a, a.wizardScreen.Init()

	default:
		a.screen = ScreenSearch
		a.searchScreen = providers.New(a.types)
		return a, a.searchScreen.Init()
	}
}

func (a *App) search(query client.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		results, err := a.client.SearchProviders(context.Background(), query)
		return searchResultsMsg{results: results, err: err}
	}
}

// bookProvider creates a booking at the provider's listed price
func (a *App) bookProvider(p client.Provider) tea.Cmd {
	input := client.BookingInput{
		ProviderID:  p.ID,
		ServiceType: p.ServiceType,
		TotalPrice:  p.Price,
	}
	if p.Role == session.RoleTutor {
		input.ServiceType = "tutoring"
		input.Subject = p.Subject
	}

	return func() tea.Msg {
		booking, err := a.client.CreateBooking(context.Background(), input)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

func (a *App) bookRecommended(p client.RecommendedProvider) tea.Cmd {
	input := client.BookingInput{
		ProviderID:  p.ID,
		ServiceType: p.ServiceType,
		TotalPrice:  p.Price,
	}
	return func() tea.Msg {
		booking, err := a.client.CreateBooking(context.Background(), input)
		return bookingCreatedMsg{booking: booking, err: err}
	}
}

func (a *App) handleBookingCreated(msg bookingCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch a.screen {
		case ScreenSearch:
			if a.searchScreen != nil {
				a.searchScreen.SetError(msg.err.Error())
			}
		case ScreenChat:
			if a.chatScreen != nil {
				a.chatScreen.SetError(msg.err.Error())
			}
		default:
			a.err = msg.err
		}
		return a, nil
	}

	a.notice = fmt.Sprintf("Booking #%d created, waiting for the provider to accept", msg.booking.ID)
	return a.toBookings()
}

func (a *App) sendChat(msg chat.SendMsg) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.client.Chat(context.Background(), msg.Message, msg.History)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (a *App) loadBookings() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.Bookings(context.Background())
		return bookingsLoadedMsg{list: list, err: err}
	}
}

func (a *App) updateBooking(id int64, status string) tea.Cmd {
	return func() tea.Msg {
		booking, err := a.client.UpdateBookingStatus(context.Background(), id, status)
		return bookingUpdatedMsg{booking: booking, err: err}
	}
}

// handleWizardComplete stashes the collected profile and moves on to
// document selection
func (a *App) handleWizardComplete(msg wizard.WizardCompleteMsg) (tea.Model, tea.Cmd) {
	a.wizardScreen = nil
	a.pendingWorker = msg.Worker
	a.pendingTutor = msg.Tutor
	a.docStage = docIdentity

	a.screen = ScreenDocPicker
	a.docPicker = filepicker.New("Select ID document", a.recentDocs.List(), true)
	return a, a.docPicker.Init()
}

// handleDocumentSelected attaches the picked document (empty path means
// skipped) and either asks for the next document or submits the profile
func (a *App) handleDocumentSelected(path string) (tea.Model, tea.Cmd) {
	if path != "" {
		a.recentDocs.Add(path)
	}

	switch a.docStage {
	case docIdentity:
		if a.pendingWorker != nil {
			a.pendingWorker.IDDocumentPath = path
			a.docStage = docNone
			return a, a.submitWorkerProfile()
		}
		if a.pendingTutor != nil {
			a.pendingTutor.IDDocumentPath = path
			a.docStage = docQualification
			a.docPicker = filepicker.New("Select qualification document", a.recentDocs.List(), true)
			return a, a.docPicker.Init()
		}

	case docQualification:
		if a.pendingTutor != nil {
			a.pendingTutor.QualificationDocPath = path
			a.docStage = docNone
			return a, a.submitTutorProfile()
		}
	}

	return a.toMenu()
}

func (a *App) submitWorkerProfile() tea.Cmd {
	input := *a.pendingWorker
	a.pendingWorker = nil
	return func() tea.Msg {
		profile, err := a.client.CreateWorkerProfile(context.Background(), input)
		return profileCreatedMsg{worker: profile, err: err}
	}
}

func (a *App) submitTutorProfile() tea.Cmd {
	input := *a.pendingTutor
	a.pendingTutor = nil
	return func() tea.Msg {
		profile, err := a.client.CreateTutorProfile(context.Background(), input)
		return profileCreatedMsg{tutor: profile, err: err}
	}
}

func (a *App) handleProfileCreated(msg profileCreatedMsg) (tea.Model, tea.Cmd) {
	a.docPicker = nil
	if msg.err != nil {
		debuglog.Error("create profile", msg.err)
		a.err = msg.err
		return a.toMenu()
	}

	a.screen = ScreenProfile
	a.workerProfile = msg.worker
	a.tutorProfile = msg.tutor
	a.err = nil
	return a, nil
}

func (a *App) loadProfile() tea.Cmd {
	id, _ := a.session.Current()
	if id == nil {
		return nil
	}

	if id.Role == session.RoleTutor {
		return func() tea.Msg {
			profile, err := a.client.TutorProfile(context.Background())
			return profileLoadedMsg{tutor: profile, err: err}
		}
	}
	return func() tea.Msg {
		profile, err := a.client.WorkerProfile(context.Background())
		return profileLoadedMsg{worker: profile, err: err}
	}
}

func (a *App) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err
		return a, nil
	}
	a.workerProfile = msg.worker
	a.tutorProfile = msg.tutor
	a.err = nil
	return a, nil
}

// openRatingForm builds the 1-5 rating form for a completed booking
func (a *App) openRatingForm(booking client.Booking) (tea.Model, tea.Cmd) {
	a.ratingTarget = booking
	a.ratingScore = "5"
	a.ratingComment = ""

	a.ratingForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Score").
				Options(
					huh.NewOption("★★★★★ Excellent", "5"),
					huh.NewOption("★★★★ Good", "4"),
					huh.NewOption("★★★ Okay", "3"),
					huh.NewOption("★★ Poor", "2"),
					huh.NewOption("★ Terrible", "1"),
				).
				Value(&a.ratingScore),
			huh.NewText().
				Title("Comment").
				Description("Optional").
				Value(&a.ratingComment),
		).Title(fmt.Sprintf("Rate booking #%d", booking.ID)).
			Description("Ratings feed the provider's trust score"),
	).WithTheme(forms.Theme())

	a.screen = ScreenRate
	return a, a.ratingForm.Init()
}

func (a *App) updateRatingForm(msg tea.Msg) tea.Cmd {
	if a.ratingForm == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.ratingForm = nil
		a.screen = ScreenBookings
		return nil
	}

	form, cmd := a.ratingForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.ratingForm = f
	}

	if a.ratingForm.State == huh.StateCompleted {
		score, err := strconv.Atoi(a.ratingScore)
		if err != nil {
			score = 5
		}
		input := client.RatingInput{
			ProviderID: a.ratingTarget.ProviderID,
			BookingID:  a.ratingTarget.ID,
			Score:      float64(score),
			Comment:    a.ratingComment,
		}
		a.ratingForm = nil
		return func() tea.Msg {
			err := a.client.SubmitRating(context.Background(), input)
			return ratingSubmittedMsg{err: err}
		}
	}

	return cmd
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenAuth:
		if a.authScreen != nil {
			content = a.authScreen.View()
		}
	case ScreenMenu:
		if a.menuScreen != nil {
			content = a.menuScreen.View()
			if a.err != nil {
				content = styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" + content
			}
		}
	case ScreenSearch:
		if a.searchScreen != nil {
			content = a.searchScreen.View()
		}
	case ScreenBookings:
		if a.bookScreen != nil {
			content = a.bookScreen.View()
		}
	case ScreenChat:
		if a.chatScreen != nil {
			content = a.chatScreen.View()
		}
	case ScreenWizard:
		if a.wizardScreen != nil {
			content = a.wizardScreen.View()
		}
	case ScreenDocPicker:
		if a.docPicker != nil {
			content = a.docPicker.View()
		}
	case ScreenRate:
		content = a.viewRating()
	case ScreenProfile:
		content = a.viewProfile()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewRating() string {
	if a.ratingForm == nil {
		return ""
	}
	return a.ratingForm.View()
}

// viewProfile renders the provider's profile with verification status
// and scores
func (a *App) viewProfile() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Help.Render("Esc back")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("My profile"))
	b.WriteString("\n\n")

	config := widgets.DefaultMetricBlockConfig()
	config.Width = 26

	switch {
	case a.workerProfile != nil:
		p := a.workerProfile
		b.WriteString(fmt.Sprintf("Service: %s  %s\n\n",
			styles.ValueStyle.Render(p.ServiceType),
			widgets.VerificationBadge(p.VerificationStatus)))

		blocks := lipgloss.JoinHorizontal(lipgloss.Top,
			widgets.MetricBlock(icons.Star, "Rating", fmt.Sprintf("%.1f / 5", p.Rating), "from customer ratings", config),
			" ",
			widgets.MetricBlock(icons.Money, "Price", fmt.Sprintf("%.0f", p.Price), "per booking", config),
		)
		b.WriteString(blocks)
		b.WriteString("\n")

	case a.tutorProfile != nil:
		p := a.tutorProfile
		b.WriteString(fmt.Sprintf("Subject: %s  %s\n\n",
			styles.ValueStyle.Render(p.Subject),
			widgets.VerificationBadge(p.VerificationStatus)))

		blocks := lipgloss.JoinHorizontal(lipgloss.Top,
			widgets.ScoreBlock(icons.Document, "Qualification", p.QualificationScore, "credential review", config),
			" ",
			widgets.ScoreBlock(icons.Tutor, "Skill", p.SkillScore, "demo lesson score", config),
		)
		b.WriteString(blocks)
		b.WriteString("\n")

		if p.ProfileSummary != "" {
			b.WriteString("\n")
			b.WriteString(styles.Subtitle.Render(p.ProfileSummary))
			b.WriteString("\n")
		}

	default:
		b.WriteString(styles.Subtitle.Render("Loading profile..."))
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Esc back"))
	return b.String()
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	icon := icons.App.String()
	title := "SkillServe"

	// Build left content
	leftText := fmt.Sprintf(" %s %s", icon, titleStyle.Render(title))

	// Right side shows who is logged in
	rightText := ""
	if id, loading := a.session.Current(); !loading && id != nil {
		rightText = contextStyle.Render(fmt.Sprintf("%s (%s)", id.Name, id.Role)) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftRendered + fill + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenAuth:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Quit"}
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenSearch:
		shortcuts = []string{"↑↓ Navigate", "Enter Book", "Esc Back"}
	case ScreenBookings:
		shortcuts = []string{"↑↓ Navigate", "r Refresh", "Esc Back"}
	case ScreenChat:
		shortcuts = []string{"Enter Send", "Esc Back"}
	case ScreenWizard, ScreenRate:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenDocPicker:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "Esc Cancel"}
	case ScreenProfile:
		shortcuts = []string{"Esc Back"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	leftWidth := lipgloss.Width(leftPlainText)
	fillWidth := width - 4 - leftWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI. The 401 hook is wired to the running program so an
// expired session anywhere routes back to login.
func Run(apiClient *client.Client, sess *session.Store, store storage.Store) error {
	app := New(apiClient, sess, store)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	apiClient.SetUnauthorizedHook(func() {
		p.Send(sessionExpiredMsg{})
	})
	defer apiClient.SetUnauthorizedHook(nil)

	_, err := p.Run()
	return err
}
