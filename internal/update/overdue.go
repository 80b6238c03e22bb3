package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/editor"
	"keep/internal/model"
	"keep/internal/store"
	"keep/internal/views"
)

// handleOverdueKey runs the overdue review. Rescheduling re-dates a task
// without touching completion; dates before today are rejected.
func (m Model) handleOverdueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.RedatePrompt != nil {
		return m.handleRedatePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
	case key.Matches(msg, m.Keys.Up):
		if m.OverdueCursor > 0 {
			m.OverdueCursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.OverdueCursor < len(m.overdueTasks())-1 {
			m.OverdueCursor++
		}
	case key.Matches(msg, m.Keys.Reschedule):
		m.rescheduleSelected(m.now().Date)
	case key.Matches(msg, m.Keys.Redate):
		if _, ok := m.selectedOverdueTask(); ok {
			m.RedatePrompt = editor.New()
			m.setStatus("reschedule to (yyyy-mm-dd), enter confirms, esc cancels")
		}
	case key.Matches(msg, m.Keys.Save):
		m.saveNow()
	default:
		if msg.Type == tea.KeyEsc {
			m.CurrentView = ViewTaskList
		}
	}

	if m.CurrentView == ViewOverdue && len(m.overdueTasks()) == 0 {
		m.CurrentView = ViewTaskList
		m.setStatus("no overdue tasks left")
	}
	return m, nil
}

func (m Model) handleRedatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.RedatePrompt = nil
		m.setStatus("reschedule cancelled")
	case tea.KeyEnter:
		date, err := model.ParseDate(m.RedatePrompt.Text())
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if m.rescheduleSelected(date) {
			m.RedatePrompt = nil
		}
		if m.CurrentView == ViewOverdue && len(m.overdueTasks()) == 0 {
			m.CurrentView = ViewTaskList
			m.setStatus("no overdue tasks left")
		}
	case tea.KeyBackspace:
		m.RedatePrompt.Backspace()
	case tea.KeyLeft:
		m.RedatePrompt.Move(editor.Left)
	case tea.KeyRight:
		m.RedatePrompt.Move(editor.Right)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.RedatePrompt.InsertRune(r)
		}
	}
	return m, nil
}

// rescheduleOverdue applies the chosen date to the selected overdue
// task. Re-dating into the past would leave the task overdue again, so
// anything before today is refused. Both the review keys and the
// palette command go through here.
func (m *Model) rescheduleOverdue(date model.Date) (model.Task, error) {
	task, ok := m.selectedOverdueTask()
	if !ok {
		return model.Task{}, fmt.Errorf("no overdue task selected")
	}
	if date.Before(m.now().Date) {
		return model.Task{}, fmt.Errorf("cannot reschedule before today (%s)", m.now().Date)
	}
	if err := m.Store.Reschedule(task.ID, date); err != nil {
		return model.Task{}, err
	}
	if n := len(m.overdueTasks()); m.OverdueCursor >= n && n > 0 {
		m.OverdueCursor = n - 1
	}
	return task, nil
}

// rescheduleSelected is the review-key wrapper; the outcome lands in
// the status bar.
func (m *Model) rescheduleSelected(date model.Date) bool {
	task, err := m.rescheduleOverdue(date)
	if err != nil {
		m.setError(err.Error())
		return false
	}
	m.setStatus(fmt.Sprintf("rescheduled %q to %s", task.Description, date))
	return true
}

func (m Model) overdueTasks() []model.Task {
	return store.Overdue(m.Store, m.now())
}

func (m Model) selectedOverdueTask() (model.Task, bool) {
	tasks := m.overdueTasks()
	if len(tasks) == 0 || m.OverdueCursor < 0 || m.OverdueCursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.OverdueCursor], true
}

func (m Model) renderOverdueView() string {
	tasks := m.overdueTasks()
	if len(tasks) == 0 {
		return "Nothing overdue."
	}
	var b strings.Builder
	b.WriteString("Overdue tasks ('t' today, 'r' pick date, esc dismiss)\n\n")
	for i, t := range tasks {
		line := fmt.Sprintf("%s  ended %s %s  %s", views.Checkbox(t.Completed), t.Date, t.End, t.Description)
		if i == m.OverdueCursor {
			line = views.Selected("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.RedatePrompt != nil {
		_, col := m.RedatePrompt.Cursor()
		b.WriteString("\nReschedule to: " + views.CursorLine(m.RedatePrompt.Text(), col))
	}
	return strings.TrimRight(b.String(), "\n")
}
