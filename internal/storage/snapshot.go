// Package storage persists the whole session state as one snapshot:
// every task record plus the notes blob. Two backends implement the
// gateway, a JSON file written atomically and a sqlite database.
package storage

import (
	"errors"
	"fmt"

	"keep/internal/model"
)

var ErrPersistence = errors.New("storage: persistence failure")

// TaskRecord is the wire form of a task.
type TaskRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Completed   bool   `json:"completed"`
}

type Snapshot struct {
	Tasks []TaskRecord `json:"tasks"`
	Notes string       `json:"notes"`
}

// Gateway loads and saves whole-store snapshots. Load on a store that
// was never saved returns an empty snapshot, not an error.
type Gateway interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

func EncodeSnapshot(tasks []model.Task, notes string) Snapshot {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, TaskRecord{
			ID:          string(t.ID),
			Description: t.Description,
			Date:        t.Date.String(),
			Start:       t.Start.String(),
			End:         t.End.String(),
			Completed:   t.Completed,
		})
	}
	return Snapshot{Tasks: records, Notes: notes}
}

// DecodeSnapshot turns persisted records back into model tasks,
// preserving record order.
func DecodeSnapshot(snap Snapshot) ([]model.Task, string, error) {
	tasks := make([]model.Task, 0, len(snap.Tasks))
	for _, rec := range snap.Tasks {
		date, err := model.ParseDate(rec.Date)
		if err != nil {
			return nil, "", fmt.Errorf("task %s: %w", rec.ID, err)
		}
		start, err := model.ParseClock(rec.Start)
		if err != nil {
			return nil, "", fmt.Errorf("task %s: %w", rec.ID, err)
		}
		end, err := model.ParseClock(rec.End)
		if err != nil {
			return nil, "", fmt.Errorf("task %s: %w", rec.ID, err)
		}
		tasks = append(tasks, model.Task{
			ID:          model.TaskID(rec.ID),
			Description: rec.Description,
			Date:        date,
			Start:       start,
			End:         end,
			Completed:   rec.Completed,
		})
	}
	return tasks, snap.Notes, nil
}
