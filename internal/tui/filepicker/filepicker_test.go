// ABOUTME: Tests for the document picker component
// ABOUTME: Exercises navigation, selection, skip, and bad-path errors

package filepicker

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectRecentDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "id.jpg")
	require.NoError(t, os.WriteFile(doc, []byte("img"), 0o600))

	fp := New("Select ID document", []string{doc}, false)

	_, cmd := fp.Update(key("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	selected, ok := msg.(DocumentSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, doc, selected.Path)
}

func TestSelectMissingFileShowsError(t *testing.T) {
	fp := New("Select ID document", []string{"/nonexistent/id.jpg"}, false)

	model, cmd := fp.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, model.(*FilePicker).err, "File not found")
}

func TestSkipWhenOptional(t *testing.T) {
	fp := New("Select ID document", nil, true)

	// Cursor starts on "Enter path...", one down is "Skip"
	fp.Update(key("j"))
	_, cmd := fp.Update(key("enter"))
	require.NotNil(t, cmd)

	_, ok := cmd().(SkippedMsg)
	assert.True(t, ok)
}

func TestEscCancels(t *testing.T) {
	fp := New("Select ID document", nil, false)

	_, cmd := fp.Update(key("esc"))
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelledMsg)
	assert.True(t, ok)
}

func TestDirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	fp := New("Select ID document", []string{dir}, false)

	model, cmd := fp.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, model.(*FilePicker).err, "Not a file")
}
