// ABOUTME: Profile creation wizard as a bubbletea model
// ABOUTME: Uses huh forms with visual progress indicator for step navigation

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/tui/forms"
	"github.com/skillserve/marketplace-cli/internal/tui/icons"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
)

// WizardCompleteMsg is sent when the wizard finishes successfully.
// Exactly one of Worker or Tutor is set; document paths are attached by
// the document picker afterwards.
type WizardCompleteMsg struct {
	Worker *client.WorkerProfileInput
	Tutor  *client.TutorProfileInput
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects a worker or tutor profile step by step
type Wizard struct {
	role  string
	types *client.ServiceTypes
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh)
	category      string
	price         string
	qualification string
	experience    string
	transcript    string
}

// Step names per role for the progress indicator
var (
	workerSteps = []string{"Service", "Pricing"}
	tutorSteps  = []string{"Subject", "Qualifications", "Demo lesson"}
)

// New creates a wizard for the given role with the backend's category
// catalog
func New(role string, types *client.ServiceTypes) *Wizard {
	w := &Wizard{
		role:  role,
		types: types,
		step:  1,
		price: "500",
	}
	w.form = w.createStep1Form()
	return w
}

func (w *Wizard) stepNames() []string {
	if w.role == session.RoleTutor {
		return tutorSteps
	}
	return workerSteps
}

func (w *Wizard) categoryOptions() []huh.Option[string] {
	var options []huh.Option[string]
	if w.types == nil {
		return options
	}
	if w.role == session.RoleTutor {
		for _, s := range w.types.TutorSubjects {
			options = append(options, huh.NewOption(s, s))
		}
	} else {
		for _, s := range w.types.HomeServices {
			options = append(options, huh.NewOption(s, s))
		}
	}
	return options
}

func (w *Wizard) createStep1Form() *huh.Form {
	title := "Service offered"
	groupTitle := "Step 1: Service"
	description := "Which home service do you provide?"
	if w.role == session.RoleTutor {
		title = "Subject taught"
		groupTitle = "Step 1: Subject"
		description = "Which subject do you teach?"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(w.categoryOptions()...).
				Value(&w.category),
		).Title(groupTitle).
			Description(description),
	).WithTheme(forms.Theme())
}

func (w *Wizard) createPricingForm(stepTitle string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Price").
				Description("What you charge for the service").
				Placeholder("e.g., 500").
				CharLimit(8).
				Value(&w.price).
				Validate(validatePrice),
		).Title(stepTitle).
			Description("You can change this later by resubmitting your profile"),
	).WithTheme(forms.Theme())
}

func (w *Wizard) createQualificationsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Qualifications").
				Description("Degrees and certifications").
				Placeholder("e.g., MSc Mathematics").
				Value(&w.qualification),
			huh.NewText().
				Title("Teaching experience").
				Description("A few sentences about your experience").
				Value(&w.experience),
			huh.NewInput().
				Title("Hourly price").
				Placeholder("e.g., 800").
				CharLimit(8).
				Value(&w.price).
				Validate(validatePrice),
		).Title("Step 2: Qualifications").
			Description("This is scored as part of your verification"),
	).WithTheme(forms.Theme())
}

func (w *Wizard) createTranscriptForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Demo lesson transcript").
				Description("Paste a transcript of you teaching a short lesson").
				Value(&w.transcript).
				Validate(validateTranscript),
		).Title("Step 3: Demo lesson").
			Description("The transcript is evaluated to produce your skill score"),
	).WithTheme(forms.Theme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	if w.role == session.RoleTutor {
		switch w.step {
		case 1:
			w.step = 2
			w.form = w.createQualificationsForm()
			return w, w.form.Init()
		case 2:
			w.step = 3
			w.form = w.createTranscriptForm()
			return w, w.form.Init()
		default:
			return w, w.complete()
		}
	}

	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createPricingForm("Step 2: Pricing")
		return w, w.form.Init()
	default:
		return w, w.complete()
	}
}

func (w *Wizard) complete() tea.Cmd {
	price, _ := strconv.ParseFloat(w.price, 64)

	if w.role == session.RoleTutor {
		input := &client.TutorProfileInput{
			Subject:               w.category,
			Price:                 price,
			QualificationText:     w.qualification,
			ExperienceDescription: w.experience,
			DemoTranscript:        w.transcript,
		}
		return func() tea.Msg { return WizardCompleteMsg{Tutor: input} }
	}

	input := &client.WorkerProfileInput{
		ServiceType: w.category,
		Price:       price,
	}
	return func() tea.Msg { return WizardCompleteMsg{Worker: input} }
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	names := w.stepNames()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, name := range names {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		if stepNum < w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		} else if stepNum == w.step {
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		} else {
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}

	stepsLine := strings.Join(steps, "    ")

	// Progress bar line format: "│  " + bar + " │" = 5 chars overhead
	barWidth := width - 5
	totalSteps := len(names)
	filledWidth := (w.step * barWidth) / totalSteps
	emptyWidth := barWidth - filledWidth

	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", emptyWidth))
	progressBar := filledBar + emptyBar

	styledTitle := titleStyle.Render("Progress")
	titleWidth := lipgloss.Width("Progress")

	topFillWidth := max(0, width-5-titleWidth)
	topBorder := "┌─ " + styledTitle + " " + strings.Repeat("─", topFillWidth) + "┐"

	stepsLineWidth := lipgloss.Width(stepsLine)
	stepsPadding := max(0, width-4-stepsLineWidth)
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", stepsPadding) + " │"

	progressLinePadded := "│  " + progressBar + " │"

	bottomFillWidth := width - 2
	bottomBorder := "└" + strings.Repeat("─", bottomFillWidth) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func validatePrice(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func validateTranscript(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a demo transcript is required")
	}
	return nil
}
