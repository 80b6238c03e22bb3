package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/commands"
	"keep/internal/editor"
	"keep/internal/model"
	"keep/internal/views"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = editor.New()
	m.setStatus("command: goto <date> | today | save | reschedule <date>")
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Palette.Active = false
		m.setStatus("")
		return m, nil
	case tea.KeyEnter:
		m.Palette.Active = false
		m.runCommand(m.Palette.Input.Text())
		return m, nil
	case tea.KeyBackspace:
		m.Palette.Input.Backspace()
	case tea.KeyLeft:
		m.Palette.Input.Move(editor.Left)
	case tea.KeyRight:
		m.Palette.Input.Move(editor.Right)
	case tea.KeySpace:
		m.Palette.Input.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.Palette.Input.InsertRune(r)
		}
	}
	return m, nil
}

func (m *Model) runCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.setError(err.Error())
		return
	}
	res, err := commands.Execute(cmd, commands.Handlers{
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			date, err := m.resolveWhen(a.Date)
			if err != nil {
				return commands.Result{}, err
			}
			m.Date = date
			m.Cursor = 0
			m.CurrentView = ViewTaskList
			return commands.Result{Message: "showing " + date.String()}, nil
		},
		Today: func() (commands.Result, error) {
			m.Date = m.now().Date
			m.Cursor = 0
			m.CurrentView = ViewTaskList
			return commands.Result{Message: "showing today"}, nil
		},
		Save: func() (commands.Result, error) {
			m.syncNotes()
			if err := m.save(); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "saved"}, nil
		},
		Reschedule: func(a commands.RescheduleArgs) (commands.Result, error) {
			date, err := m.resolveWhen(a.When)
			if err != nil {
				return commands.Result{}, err
			}
			task, err := m.rescheduleOverdue(date)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("rescheduled %q to %s", task.Description, date)}, nil
		},
	})
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.setStatus(res.Message)
}

func (m Model) resolveWhen(when string) (model.Date, error) {
	if when == "today" {
		return m.now().Date, nil
	}
	return model.ParseDate(when)
}

func (m Model) renderPalette() string {
	_, col := m.Palette.Input.Cursor()
	return "/ " + views.CursorLine(m.Palette.Input.Text(), col)
}
