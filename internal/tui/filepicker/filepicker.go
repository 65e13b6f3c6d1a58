// ABOUTME: Document picker TUI component for profile uploads
// ABOUTME: Shows recently used documents plus a free-form path input

package filepicker

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// State represents the current UI state
type state int

const (
	stateList state = iota
	stateInput
)

// DocumentSelectedMsg is sent when a document is selected
type DocumentSelectedMsg struct {
	Path string
}

// SkippedMsg is sent when the user declines to attach a document
type SkippedMsg struct{}

// CancelledMsg is sent when the user cancels
type CancelledMsg struct{}

// FilePicker is the document selection component
type FilePicker struct {
	title       string
	optional    bool
	recentFiles []string
	cursor      int
	state       state
	textInput   textinput.Model
	err         string
	width       int
	height      int
}

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// New creates a new FilePicker. When optional is true the list carries a
// skip entry so the form can continue without a document.
func New(title string, recentFiles []string, optional bool) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "/path/to/document.pdf"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		title:       title,
		optional:    optional,
		recentFiles: recentFiles,
		cursor:      0,
		state:       stateList,
		textInput:   ti,
	}
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		// Clear error on any key press
		fp.err = ""

		switch fp.state {
		case stateList:
			return fp.updateList(msg)
		case stateInput:
			return fp.updateInput(msg)
		}
	}

	return fp, nil
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := fp.listItemCount()

	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < maxItems-1 {
			fp.cursor++
		}
	case "enter":
		return fp.selectListItem()
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}

	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		return fp, nil
	case "enter":
		path := fp.textInput.Value()
		if path == "" {
			fp.err = "Please enter a file path"
			return fp, nil
		}
		return fp.checkFile(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) listItemCount() int {
	count := len(fp.recentFiles) + 1 // +1 for "Enter path..."
	if fp.optional {
		count++ // +1 for "Skip"
	}
	return count
}

func (fp *FilePicker) selectListItem() (tea.Model, tea.Cmd) {
	recentCount := len(fp.recentFiles)

	if fp.cursor < recentCount {
		// Recent document selected
		path := fp.recentFiles[fp.cursor]
		return fp.checkFile(path)
	}

	if fp.cursor == recentCount {
		// "Enter path..." selected
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	}

	if fp.optional && fp.cursor == recentCount+1 {
		return fp, func() tea.Msg { return SkippedMsg{} }
	}

	return fp, nil
}

// checkFile verifies the path points at a readable regular file before
// selecting it; the upload itself happens later.
func (fp *FilePicker) checkFile(path string) (tea.Model, tea.Cmd) {
	expandedPath := expandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			fp.err = "File not found: " + path
		} else if os.IsPermission(err) {
			fp.err = "Cannot read file: permission denied"
		} else {
			fp.err = "Error reading file: " + err.Error()
		}
		return fp, nil
	}
	if info.IsDir() {
		fp.err = "Not a file: " + path
		return fp, nil
	}

	return fp, func() tea.Msg {
		return DocumentSelectedMsg{Path: expandedPath}
	}
}

// expandPath expands ~ to home directory and resolves relative paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// SetError sets an error message to display
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	if fp.state == stateInput {
		return fp.viewInput()
	}
	return fp.viewList()
}

func (fp *FilePicker) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fp.title))
	b.WriteString("\n\n")

	// Recent documents section
	if len(fp.recentFiles) > 0 {
		b.WriteString(helpStyle.Render("Recent documents:"))
		b.WriteString("\n")
		for i, path := range fp.recentFiles {
			cursor := "  "
			style := normalStyle
			if i == fp.cursor {
				cursor = "> "
				style = selectedStyle
			}
			// Truncate long paths
			display := path
			if len(display) > fp.width-10 && fp.width > 20 {
				display = "..." + display[len(display)-(fp.width-13):]
			}
			b.WriteString(cursor + style.Render(display) + "\n")
		}
		b.WriteString("\n")

		dividerWidth := min(40, fp.width-4)
		if dividerWidth < 1 {
			dividerWidth = 40 // Default width if terminal size unknown
		}
		divider := strings.Repeat("─", dividerWidth)
		b.WriteString(dividerStyle.Render(divider))
		b.WriteString("\n")
	}

	// Enter path option
	idx := len(fp.recentFiles)
	cursor := "  "
	style := normalStyle
	if fp.cursor == idx {
		cursor = "> "
		style = selectedStyle
	}
	b.WriteString(cursor + style.Render("Enter path...") + "\n")

	// Skip option
	if fp.optional {
		idx++
		cursor = "  "
		style = normalStyle
		if fp.cursor == idx {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render("Skip (no document)") + "\n")
	}

	// Error message
	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}

	return b.String()
}

func (fp *FilePicker) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enter file path"))
	b.WriteString("\n\n")
	b.WriteString(fp.textInput.View())

	if fp.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
