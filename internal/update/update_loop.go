package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/storage"
	"keep/internal/store"
	"keep/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes exactly one event per cycle. Everything is processed
// synchronously: a key either transitions the view state or mutates the
// store, then the next render reads the result.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Quit is honored from every state.
	if keyMsg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	if m.Palette.Active {
		return m.handlePaletteKey(keyMsg)
	}

	switch m.CurrentView {
	case ViewAddEdit:
		return m.handleFormKey(keyMsg)
	case ViewNotes:
		return m.handleNotesKey(keyMsg)
	case ViewOverdue:
		return m.handleOverdueKey(keyMsg)
	default:
		return m.handleTaskListKey(keyMsg)
	}
}

func (m Model) View() string {
	var body, sidebar string
	switch m.CurrentView {
	case ViewAddEdit:
		body = m.renderFormView()
	case ViewNotes:
		body = m.renderNotesView()
	case ViewOverdue:
		body = m.renderOverdueView()
		sidebar = m.renderStatsSidebar()
	default:
		body = m.renderTaskListView()
		sidebar = m.renderStatsSidebar()
	}
	if m.Palette.Active {
		body += "\n\n" + m.renderPalette()
	}

	footer := m.helpModel.View(m.Keys)
	return views.RenderApp(views.AppData{
		Header:     m.renderHeader(),
		Body:       body,
		Sidebar:    sidebar,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     footer,
	})
}

// handleQuit saves a dirty store before leaving. A failed save keeps the
// session alive so nothing is lost; quitting again anyway is the escape
// hatch.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	m.syncNotes()
	if m.Store.Dirty() && !m.forceQuitArmed {
		if err := m.save(); err != nil {
			m.setError(fmt.Sprintf("save failed: %v (press quit again to discard)", err))
			m.forceQuitArmed = true
			return m, nil
		}
	}
	m.Quitting = true
	return m, tea.Quit
}

// save writes the full snapshot through the gateway and marks the store
// clean on success.
func (m *Model) save() error {
	snap := storage.EncodeSnapshot(m.Store.Tasks(), m.Store.Notes())
	if err := m.Gateway.Save(snap); err != nil {
		return err
	}
	m.Store.MarkClean()
	return nil
}

// saveNow is the user-facing save: notes are synced first and the result
// lands in the status bar.
func (m *Model) saveNow() {
	m.syncNotes()
	if err := m.save(); err != nil {
		m.setError(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.setStatus("saved")
}

// syncNotes folds the notes editor content back into the store so the
// store is the single source of truth at save time.
func (m *Model) syncNotes() {
	m.Store.SetNotes(m.Notes.Text())
}

func (m *Model) setStatus(text string) {
	m.Status = StatusBar{Text: text}
	m.forceQuitArmed = false
}

func (m *Model) setError(text string) {
	m.Status = StatusBar{Text: text, IsError: true}
}

func (m Model) renderHeader() string {
	overdueCount := len(store.Overdue(m.Store, m.now()))
	header := "keep"
	switch m.CurrentView {
	case ViewNotes:
		header += " | Notes"
	case ViewOverdue:
		header += " | Overdue Review"
	case ViewAddEdit:
		if m.Draft != nil && m.Draft.EditingID != "" {
			header += " | Edit Task"
		} else {
			header += " | New Task"
		}
		header += " | " + m.Date.Display()
	default:
		header += " | " + m.Date.Display()
		if m.Date == m.now().Date {
			header += " (Today)"
		}
	}
	if overdueCount > 0 && m.CurrentView != ViewOverdue {
		header += "  " + views.OverdueTag(fmt.Sprintf("! %d overdue", overdueCount))
	}
	return header
}
