// Package store owns the in-memory task collection and notes blob for a
// session. Mutations go through the store; day and overdue views are
// derived on demand and never cached.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"keep/internal/model"
)

var ErrNotFound = errors.New("store: task not found")

// Fields carries the raw user-entered values for a task create or edit.
// Start and End are unparsed "HH:MM" strings; validation happens here so
// a rejected edit leaves the store untouched.
type Fields struct {
	Description string
	Date        model.Date
	Start       string
	End         string
}

type Store struct {
	tasks []model.Task
	notes string
	dirty bool
}

func New() *Store {
	return &Store{}
}

// FromSnapshot rebuilds a store from persisted tasks and notes. The
// resulting store is clean: loading is not a mutation.
func FromSnapshot(tasks []model.Task, notes string) *Store {
	s := &Store{notes: notes}
	s.tasks = append(s.tasks, tasks...)
	return s
}

func (s *Store) Add(f Fields) (model.Task, error) {
	task, err := buildTask(model.TaskID(uuid.NewString()), f, false)
	if err != nil {
		return model.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	s.dirty = true
	return task, nil
}

func (s *Store) Update(id model.TaskID, f Fields) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	task, err := buildTask(id, f, s.tasks[i].Completed)
	if err != nil {
		return err
	}
	s.tasks[i] = task
	s.dirty = true
	return nil
}

func (s *Store) Delete(id model.TaskID) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.dirty = true
	return nil
}

func (s *Store) ToggleComplete(id model.TaskID) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.dirty = true
	return nil
}

// Reschedule moves a task to a new owning date without touching its
// completion flag or times.
func (s *Store) Reschedule(id model.TaskID, date model.Date) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.tasks[i].Date = date
	s.dirty = true
	return nil
}

func (s *Store) Get(id model.TaskID) (model.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns the tasks in insertion order. The slice is a copy.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Notes() string {
	return s.notes
}

func (s *Store) SetNotes(text string) {
	if s.notes == text {
		return
	}
	s.notes = text
	s.dirty = true
}

// Dirty reports whether mutations are pending persistence.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkClean is called by the persistence layer after a successful save.
func (s *Store) MarkClean() {
	s.dirty = false
}

func (s *Store) indexOf(id model.TaskID) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func buildTask(id model.TaskID, f Fields, completed bool) (model.Task, error) {
	start, err := model.ParseClock(f.Start)
	if err != nil {
		return model.Task{}, err
	}
	end, err := model.ParseClock(f.End)
	if err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:          id,
		Description: strings.TrimSpace(f.Description),
		Date:        f.Date,
		Start:       start,
		End:         end,
		Completed:   completed,
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	return task, nil
}
