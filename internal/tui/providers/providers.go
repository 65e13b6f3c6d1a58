// ABOUTME: Provider search screen with category filter and result list
// ABOUTME: Emits search and booking requests for the app to run against the backend

package providers

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/tui/forms"
	"github.com/skillserve/marketplace-cli/internal/tui/styles"
	"github.com/skillserve/marketplace-cli/internal/tui/widgets"
)

type state int

const (
	stateFilter state = iota
	stateSearching
	stateResults
)

// Category value prefixes distinguish home services from subjects in the
// combined filter select.
const (
	prefixService = "service:"
	prefixSubject = "subject:"
)

// SearchSubmittedMsg is sent when the user confirms a filter
type SearchSubmittedMsg struct {
	Query client.SearchQuery
}

// BookRequestedMsg is sent when the user books the selected provider
type BookRequestedMsg struct {
	Provider client.Provider
}

// CancelledMsg is sent when the user leaves the screen
type CancelledMsg struct{}

// Providers is the provider search screen
type Providers struct {
	state    state
	form     *huh.Form
	category string
	results  []client.Provider
	cursor   int
	err      string
	width    int
}

// New creates the search screen with the category options the backend
// advertises
func New(types *client.ServiceTypes) *Providers {
	p := &Providers{}
	p.form = p.createFilterForm(types)
	return p
}

func (p *Providers) createFilterForm(types *client.ServiceTypes) *huh.Form {
	var options []huh.Option[string]
	if types != nil {
		for _, s := range types.HomeServices {
			options = append(options, huh.NewOption(s+" (home service)", prefixService+s))
		}
		for _, s := range types.TutorSubjects {
			options = append(options, huh.NewOption(s+" (tutoring)", prefixSubject+s))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you need?").
				Options(options...).
				Value(&p.category),
		).Title("Search providers").
			Description("Only approved providers are listed"),
	).WithTheme(forms.Theme())
}

// Init implements tea.Model
func (p *Providers) Init() tea.Cmd {
	return p.form.Init()
}

// Update implements tea.Model
func (p *Providers) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		if p.state == stateFilter {
			form, cmd := p.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				p.form = f
			}
			return p, cmd
		}
		return p, nil

	case tea.KeyMsg:
		switch p.state {
		case stateFilter:
			return p.updateFilter(msg)
		case stateResults:
			return p.updateResults(msg)
		}
		return p, nil
	}

	if p.state == stateFilter {
		form, cmd := p.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			p.form = f
		}
		if p.form.State == huh.StateCompleted {
			return p.submitFilter()
		}
		return p, cmd
	}

	return p, nil
}

func (p *Providers) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return p, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}
	if p.form.State == huh.StateCompleted {
		return p.submitFilter()
	}
	return p, cmd
}

func (p *Providers) submitFilter() (tea.Model, tea.Cmd) {
	var query client.SearchQuery
	switch {
	case strings.HasPrefix(p.category, prefixService):
		query.ServiceType = strings.TrimPrefix(p.category, prefixService)
	case strings.HasPrefix(p.category, prefixSubject):
		query.Subject = strings.TrimPrefix(p.category, prefixSubject)
	}

	p.state = stateSearching
	p.err = ""
	return p, func() tea.Msg { return SearchSubmittedMsg{Query: query} }
}

func (p *Providers) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}
	case "enter":
		if p.cursor < len(p.results) {
			provider := p.results[p.cursor]
			return p, func() tea.Msg { return BookRequestedMsg{Provider: provider} }
		}
	case "esc", "b":
		return p, func() tea.Msg { return CancelledMsg{} }
	}
	return p, nil
}

// SetResults switches the screen to the result list
func (p *Providers) SetResults(results []client.Provider) {
	p.results = results
	p.cursor = 0
	p.state = stateResults
}

// SetError shows an error on the current state
func (p *Providers) SetError(err string) {
	p.err = err
	if p.state == stateSearching {
		p.state = stateResults
	}
}

// View implements tea.Model
func (p *Providers) View() string {
	switch p.state {
	case stateSearching:
		return styles.Subtitle.Render("Searching providers...")
	case stateResults:
		return p.viewResults()
	default:
		return p.form.View()
	}
}

func (p *Providers) viewResults() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Approved providers"))
	b.WriteString("\n\n")

	if p.err != "" {
		b.WriteString(styles.StatusCritical.Render("Error: " + p.err))
		b.WriteString("\n")
		return b.String()
	}

	if len(p.results) == 0 {
		b.WriteString(styles.Subtitle.Render("No approved providers found for that category."))
		return b.String()
	}

	for i, r := range p.results {
		cursor := "  "
		nameStyle := styles.ValueStyle
		if i == p.cursor {
			cursor = styles.KeyStyle.Render("> ")
		} else {
			nameStyle = styles.Subtitle
		}

		score := r.Rating
		if r.Role == session.RoleTutor {
			score = r.SkillScore
		}

		line := fmt.Sprintf("%s%s  %s  %s %s  %s",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-20s", r.Name)),
			widgets.TrustBadge(r.TrustScore),
			styles.Stars(score),
			styles.Subtitle.Render(r.Category()),
			styles.ValueStyle.Render(fmt.Sprintf("%.0f", r.Price)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("Enter book selected provider · Esc back"))
	return b.String()
}
