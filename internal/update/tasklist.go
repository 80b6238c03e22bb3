package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/model"
	"keep/internal/store"
	"keep/internal/views"
)

func (m Model) handleTaskListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
	case key.Matches(msg, m.Keys.Add):
		m.Draft = newFormDraft()
		m.CurrentView = ViewAddEdit
		m.setStatus("new task: tab switches fields, enter saves, esc cancels")
	case key.Matches(msg, m.Keys.Edit):
		if task, ok := m.selectedTask(); ok {
			m.Draft = draftFromTask(task)
			m.CurrentView = ViewAddEdit
			m.setStatus("editing task")
		}
	case key.Matches(msg, m.Keys.Toggle):
		if task, ok := m.selectedTask(); ok {
			if err := m.Store.ToggleComplete(task.ID); err != nil {
				m.setError(err.Error())
			}
		}
	case key.Matches(msg, m.Keys.Delete):
		if task, ok := m.selectedTask(); ok {
			if err := m.Store.Delete(task.ID); err != nil {
				m.setError(err.Error())
			} else {
				m.setStatus("task deleted")
			}
			m.clampCursor()
		}
	case key.Matches(msg, m.Keys.PrevDay):
		m.Date = m.Date.AddDays(-1)
		m.Cursor = 0
	case key.Matches(msg, m.Keys.NextDay):
		m.Date = m.Date.AddDays(1)
		m.Cursor = 0
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.dayTasks())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Notes):
		m.CurrentView = ViewNotes
	case key.Matches(msg, m.Keys.Overdue):
		if len(store.Overdue(m.Store, m.now())) > 0 {
			m.CurrentView = ViewOverdue
			m.OverdueCursor = 0
		}
	case key.Matches(msg, m.Keys.Save):
		m.saveNow()
	}
	return m, nil
}

func (m Model) dayTasks() []model.Task {
	return store.TasksOn(m.Store, m.Date)
}

// selectedTask re-derives the day view on every call; the cursor can be
// stale after a mutation, so it is validated here rather than trusted.
func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.dayTasks()
	if len(tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.dayTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) renderTaskListView() string {
	tasks := m.dayTasks()
	if len(tasks) == 0 {
		return "No tasks for this day.\n\nPress 'a' to add one."
	}
	var b strings.Builder
	for i, t := range tasks {
		line := fmt.Sprintf("%s %s-%s  %s", views.Checkbox(t.Completed), t.Start, t.End, t.Description)
		switch {
		case i == m.Cursor:
			line = views.Selected("> " + line)
		default:
			line = "  " + line
		}
		if t.Completed {
			line = views.Done(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStatsSidebar() string {
	tasks := m.dayTasks()
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	pending := total - completed

	lines := []string{
		"Day summary",
		"",
		fmt.Sprintf("Total    %d", total),
		fmt.Sprintf("Pending  %d", pending),
		fmt.Sprintf("Done     %d", completed),
	}
	if overdue := len(store.Overdue(m.Store, m.now())); overdue > 0 {
		lines = append(lines, "", views.OverdueTag(fmt.Sprintf("Overdue  %d  (press 'o')", overdue)))
	}
	if m.Store.Dirty() {
		lines = append(lines, "", "unsaved changes")
	}
	return strings.Join(lines, "\n")
}
