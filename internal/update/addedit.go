package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/editor"
	"keep/internal/views"
)

// handleFormKey drives the add/edit form. Confirm validates against the
// store rules; a failed validation keeps the draft intact so the user
// can correct it.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Draft == nil {
		m.CurrentView = ViewTaskList
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.Draft = nil
		m.CurrentView = ViewTaskList
		m.setStatus("discarded")
		return m, nil
	case tea.KeyTab:
		m.Draft.Focus = m.Draft.Focus.Next()
		return m, nil
	case tea.KeyEnter:
		return m.confirmDraft()
	case tea.KeyBackspace:
		m.Draft.focused().Backspace()
		return m, nil
	case tea.KeyDelete:
		m.Draft.focused().DeleteForward()
		return m, nil
	case tea.KeyLeft:
		m.Draft.focused().Move(editor.Left)
		return m, nil
	case tea.KeyRight:
		m.Draft.focused().Move(editor.Right)
		return m, nil
	case tea.KeyHome:
		m.Draft.focused().Move(editor.LineStart)
		return m, nil
	case tea.KeyEnd:
		m.Draft.focused().Move(editor.LineEnd)
		return m, nil
	case tea.KeySpace:
		m.Draft.focused().InsertRune(' ')
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.Draft.focused().InsertRune(r)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) confirmDraft() (tea.Model, tea.Cmd) {
	fields := m.Draft.fields(m.Date)
	if m.Draft.EditingID == "" {
		if _, err := m.Store.Add(fields); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus("task added")
	} else {
		if err := m.Store.Update(m.Draft.EditingID, fields); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus("task updated")
	}
	m.Draft = nil
	m.CurrentView = ViewTaskList
	m.clampCursor()
	return m, nil
}

func (m Model) renderFormView() string {
	d := m.Draft
	if d == nil {
		return ""
	}
	var b strings.Builder
	row := func(field FormField, buf *editor.Buffer) {
		label := fmt.Sprintf("%-12s", field.Label())
		text := buf.Text()
		if field == d.Focus {
			_, col := buf.Cursor()
			b.WriteString(views.Selected(label) + views.CursorLine(text, col))
		} else {
			b.WriteString(label + text)
		}
		b.WriteString("\n")
	}
	row(FieldDescription, d.Description)
	row(FieldStart, d.Start)
	row(FieldEnd, d.End)
	b.WriteString("\ntimes are 24-hour HH:MM, end must not precede start")
	return b.String()
}
