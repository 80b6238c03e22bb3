package store

import (
	"sort"

	"keep/internal/model"
)

// TasksOn returns the day view for a date: tasks owned by that date,
// ordered by start time ascending. Equal start times keep their relative
// insertion order.
func TasksOn(s *Store, date model.Date) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Minutes() < out[j].Start.Minutes()
	})
	return out
}

// Overdue returns the incomplete tasks whose (date, end time) is strictly
// before now, in insertion order. Recomputed on every call so it can
// never go stale across mutations.
func Overdue(s *Store, now model.Instant) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.Completed {
			continue
		}
		if t.DeadlinePassed(now) {
			out = append(out, t)
		}
	}
	return out
}
