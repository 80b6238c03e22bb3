package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/editor"
	"keep/internal/views"
)

// handleNotesKey delegates editing keys to the notes buffer. Printable
// keys always insert, so leaving the view rides on tab/esc and saving
// on the configured save chord.
func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Save):
		m.saveNow()
		return m, nil
	case msg.String() == "ctrl+p":
		m.NotesPreview = !m.NotesPreview
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyEsc:
		if m.NotesPreview {
			m.NotesPreview = false
			return m, nil
		}
		m.syncNotes()
		m.CurrentView = ViewTaskList
		m.Date = m.now().Date
		m.Cursor = 0
		return m, nil
	}

	if m.NotesPreview {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		m.Notes.InsertNewline()
	case tea.KeyBackspace:
		m.Notes.Backspace()
	case tea.KeyDelete:
		m.Notes.DeleteForward()
	case tea.KeyLeft:
		m.Notes.Move(editor.Left)
	case tea.KeyRight:
		m.Notes.Move(editor.Right)
	case tea.KeyUp:
		m.Notes.Move(editor.Up)
	case tea.KeyDown:
		m.Notes.Move(editor.Down)
	case tea.KeyHome:
		m.Notes.Move(editor.LineStart)
	case tea.KeyEnd:
		m.Notes.Move(editor.LineEnd)
	case tea.KeySpace:
		m.Notes.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.Notes.InsertRune(r)
		}
	}
	return m, nil
}

func (m Model) renderNotesView() string {
	if m.NotesPreview {
		rendered := views.RenderMarkdown(m.Notes.Text())
		if rendered == "" {
			rendered = "(empty)"
		}
		return "Preview (ctrl+p to edit)\n\n" + rendered
	}

	line, col := m.Notes.Cursor()
	lines := m.Notes.Lines()
	var b strings.Builder
	b.WriteString("Notes (ctrl+s save, ctrl+p preview, tab back)\n\n")
	for i, l := range lines {
		if i == line {
			b.WriteString(views.CursorLine(l, col))
		} else {
			b.WriteString(l)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
