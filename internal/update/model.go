// Package update implements the view state machine: one bubbletea model
// routing key events to the active view and mutating the task store.
package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"keep/internal/config"
	"keep/internal/editor"
	"keep/internal/model"
	"keep/internal/storage"
	"keep/internal/store"
)

type View string

const (
	ViewTaskList View = "TaskList"
	ViewAddEdit  View = "AddEdit"
	ViewNotes    View = "Notes"
	ViewOverdue  View = "OverdueReview"
)

// FormField is the focus marker inside the add/edit form. The cycle
// order is fixed: Description, Start, End, back to Description.
type FormField int

const (
	FieldDescription FormField = iota
	FieldStart
	FieldEnd
)

func (f FormField) Next() FormField {
	switch f {
	case FieldDescription:
		return FieldStart
	case FieldStart:
		return FieldEnd
	default:
		return FieldDescription
	}
}

func (f FormField) Label() string {
	switch f {
	case FieldDescription:
		return "Description"
	case FieldStart:
		return "Start"
	default:
		return "End"
	}
}

// FormDraft is the transient working copy behind the add/edit form. It
// is discarded on cancel and only committed into the store on confirm.
type FormDraft struct {
	Description *editor.Buffer
	Start       *editor.Buffer
	End         *editor.Buffer
	Focus       FormField
	EditingID   model.TaskID // empty for a new task
}

func newFormDraft() *FormDraft {
	return &FormDraft{
		Description: editor.New(),
		Start:       editor.New(),
		End:         editor.New(),
	}
}

func draftFromTask(t model.Task) *FormDraft {
	d := newFormDraft()
	d.Description.Load(t.Description)
	d.Start.Load(t.Start.String())
	d.End.Load(t.End.String())
	d.EditingID = t.ID
	return d
}

func (d *FormDraft) focused() *editor.Buffer {
	switch d.Focus {
	case FieldStart:
		return d.Start
	case FieldEnd:
		return d.End
	default:
		return d.Description
	}
}

func (d *FormDraft) fields(date model.Date) store.Fields {
	return store.Fields{
		Description: d.Description.Text(),
		Date:        date,
		Start:       d.Start.Text(),
		End:         d.End.Text(),
	}
}

type StatusBar struct {
	Text    string
	IsError bool
}

type PaletteState struct {
	Active bool
	Input  *editor.Buffer
}

type KeyMap struct {
	Quit       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevDay    key.Binding
	NextDay    key.Binding
	Notes      key.Binding
	Overdue    key.Binding
	Save       key.Binding
	Palette    key.Binding
	Help       key.Binding
	Reschedule key.Binding
	Redate     key.Binding
}

func newKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Add:        key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add task")),
		Edit:       key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit task")),
		Toggle:     key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp("space", "toggle done")),
		Delete:     key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Up:         key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp("↑/"+k.Up, "up")),
		Down:       key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp("↓/"+k.Down, "down")),
		PrevDay:    key.NewBinding(key.WithKeys(k.PrevDay, "left"), key.WithHelp("←/"+k.PrevDay, "prev day")),
		NextDay:    key.NewBinding(key.WithKeys(k.NextDay, "right"), key.WithHelp("→/"+k.NextDay, "next day")),
		Notes:      key.NewBinding(key.WithKeys(k.Notes, "tab"), key.WithHelp(k.Notes, "notes")),
		Overdue:    key.NewBinding(key.WithKeys(k.Overdue), key.WithHelp(k.Overdue, "overdue")),
		Save:       key.NewBinding(key.WithKeys(k.Save), key.WithHelp(k.Save, "save")),
		Palette:    key.NewBinding(key.WithKeys(k.Palette), key.WithHelp(k.Palette, "command")),
		Help:       key.NewBinding(key.WithKeys(k.Help), key.WithHelp(k.Help, "help")),
		Reschedule: key.NewBinding(key.WithKeys(k.Reschedule), key.WithHelp(k.Reschedule, "reschedule to today")),
		Redate:     key.NewBinding(key.WithKeys(k.Redate), key.WithHelp(k.Redate, "reschedule to date")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.Notes, k.Save, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Notes, k.Overdue, k.Reschedule, k.Redate},
		{k.Save, k.Palette, k.Help, k.Quit},
	}
}

type Model struct {
	CurrentView View
	Date        model.Date
	Cursor      int

	Store   *store.Store
	Gateway storage.Gateway

	Draft *FormDraft

	Notes        *editor.Buffer
	NotesPreview bool

	OverdueCursor int
	RedatePrompt  *editor.Buffer // non-nil while the reschedule date prompt is open

	Palette PaletteState

	Status      StatusBar
	Keys        KeyMap
	helpModel   help.Model
	HelpVisible bool

	Quitting bool
	// Set when a quit-time save failed; the next quit leaves anyway.
	forceQuitArmed bool

	now func() model.Instant
}

func NewModel(s *store.Store, gw storage.Gateway, cfg config.Config) Model {
	m := Model{
		CurrentView: ViewTaskList,
		Store:       s,
		Gateway:     gw,
		Notes:       editor.New(),
		Palette:     PaletteState{Input: editor.New()},
		Keys:        newKeyMap(cfg.Keys),
		helpModel:   help.New(),
		now:         model.Now,
	}
	m.Date = m.now().Date
	m.Notes.Load(s.Notes())
	return m
}
