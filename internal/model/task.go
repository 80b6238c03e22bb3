package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTimeFormat = errors.New("model: invalid time format")
	ErrInvalidTimeRange  = errors.New("model: end time before start time")
	ErrInvalidDate       = errors.New("model: invalid date")
)

// TaskID is a stable identifier, unique within a store and never reused.
type TaskID string

type Task struct {
	ID          TaskID
	Description string
	Date        Date
	Start       ClockTime
	End         ClockTime
	Completed   bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("model: task description is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: task date is required", ErrInvalidDate)
	}
	if t.End.Before(t.Start) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidTimeRange, t.End, t.Start)
	}
	return nil
}

// DeadlinePassed reports whether the task's (date, end time) is strictly
// before the given instant. The comparison is calendar date plus wall
// clock, never elapsed duration.
func (t Task) DeadlinePassed(now Instant) bool {
	if t.Date.Before(now.Date) {
		return true
	}
	if t.Date == now.Date {
		return t.End.Before(now.Clock)
	}
	return false
}

// Instant pairs a calendar date with a wall-clock time. It is how "now"
// enters overdue classification, keeping the comparison timezone-free.
type Instant struct {
	Date  Date
	Clock ClockTime
}
