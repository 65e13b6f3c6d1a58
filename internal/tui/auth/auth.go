// ABOUTME: Login and registration screens as bubbletea models
// ABOUTME: Wraps huh forms and emits submission messages for the app to act on

package auth

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/tui/forms"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
)

// Mode selects which form the screen shows
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// LoginSubmittedMsg is sent when the login form completes
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// RegisterSubmittedMsg is sent when the registration form completes
type RegisterSubmittedMsg struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CancelledMsg is sent when the user backs out of the screen
type CancelledMsg struct{}

// Auth is the combined login/registration screen
type Auth struct {
	mode  Mode
	form  *huh.Form
	err   string
	width int

	// Form field values
	name     string
	email    string
	password string
	role     string
}

// New creates the auth screen in the given mode
func New(mode Mode) *Auth {
	a := &Auth{mode: mode, role: session.RoleCustomer}
	a.form = a.createForm()
	return a
}

func (a *Auth) createForm() *huh.Form {
	switch a.mode {
	case ModeRegister:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Placeholder("Asha Rao").
					Value(&a.name).
					Validate(validateRequired("name")),
				huh.NewInput().
					Title("Email").
					Placeholder("you@example.com").
					Value(&a.email).
					Validate(validateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&a.password).
					Validate(validatePassword),
				huh.NewSelect[string]().
					Title("Account type").
					Options(
						huh.NewOption("Customer - book services", session.RoleCustomer),
						huh.NewOption("Worker - offer home services", session.RoleWorker),
						huh.NewOption("Tutor - offer tutoring", session.RoleTutor),
					).
					Value(&a.role),
			).Title("Create account").
				Description("Ctrl+L to log in instead, Esc to quit"),
		).WithTheme(forms.Theme())

	default:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Placeholder("you@example.com").
					Value(&a.email).
					Validate(validateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&a.password).
					Validate(validateRequired("password")),
			).Title("Log in").
				Description("Ctrl+N to create an account, Esc to quit"),
		).WithTheme(forms.Theme())
	}
}

// Init implements tea.Model
func (a *Auth) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model
func (a *Auth) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		form, cmd := a.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.form = f
		}
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return a, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+n":
			if a.mode == ModeLogin {
				return a.switchMode(ModeRegister)
			}
		case "ctrl+l":
			if a.mode == ModeRegister {
				return a.switchMode(ModeLogin)
			}
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		return a, a.submit()
	}

	return a, cmd
}

func (a *Auth) switchMode(mode Mode) (tea.Model, tea.Cmd) {
	a.mode = mode
	a.err = ""
	a.form = a.createForm()
	return a, a.form.Init()
}

func (a *Auth) submit() tea.Cmd {
	if a.mode == ModeRegister {
		msg := RegisterSubmittedMsg{
			Name:     a.name,
			Email:    a.email,
			Password: a.password,
			Role:     a.role,
		}
		return func() tea.Msg { return msg }
	}

	msg := LoginSubmittedMsg{Email: a.email, Password: a.password}
	return func() tea.Msg { return msg }
}

// SetError shows an inline error and rearms the form with the values
// the user already typed, so a failed login is a retry not a restart.
func (a *Auth) SetError(err string) tea.Cmd {
	a.err = err
	a.password = ""
	a.form = a.createForm()
	return a.form.Init()
}

// Mode returns the current screen mode
func (a *Auth) Mode() Mode {
	return a.mode
}

// View implements tea.Model
func (a *Auth) View() string {
	var b strings.Builder

	if a.err != "" {
		b.WriteString(styles.StatusCritical.Render("✗ " + a.err))
		b.WriteString("\n\n")
	}
	b.WriteString(a.form.View())

	return b.String()
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateEmail(s string) error {
	if !strings.Contains(s, "@") || strings.HasPrefix(s, "@") || strings.HasSuffix(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}
