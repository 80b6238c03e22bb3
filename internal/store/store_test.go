package store

import (
	"errors"
	"testing"
	"time"

	"keep/internal/model"
)

var jan10 = model.Date{Year: 2024, Month: time.January, Day: 10}

func TestAddAndQueryRoundTrip(t *testing.T) {
	s := New()
	task, err := s.Add(Fields{Description: "Standup", Date: jan10, Start: "09:00", End: "09:15"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected a generated task id")
	}
	if !s.Dirty() {
		t.Fatal("add must mark the store dirty")
	}

	day := TasksOn(s, jan10)
	if len(day) != 1 {
		t.Fatalf("expected 1 task, got %d", len(day))
	}
	got := day[0]
	if got.Description != "Standup" || got.Date != jan10 ||
		got.Start != (model.ClockTime{Hour: 9}) || got.End != (model.ClockTime{Hour: 9, Minute: 15}) ||
		got.Completed {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestAddRejectsInvertedRangeWithoutMutating(t *testing.T) {
	s := New()
	_, err := s.Add(Fields{Description: "Backwards", Date: jan10, Start: "10:00", End: "09:00"})
	if err == nil || !errors.Is(err, model.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("store must stay empty after rejected add, has %d tasks", s.Len())
	}
	if s.Dirty() {
		t.Fatal("rejected add must not mark the store dirty")
	}
}

func TestAddRejectsMalformedTimes(t *testing.T) {
	s := New()
	for _, bad := range []string{"9:00", "25:00", "12:61", "noon", ""} {
		_, err := s.Add(Fields{Description: "x", Date: jan10, Start: bad, End: "23:00"})
		if err == nil || !errors.Is(err, model.ErrInvalidTimeFormat) {
			t.Fatalf("start %q: expected ErrInvalidTimeFormat, got %v", bad, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", s.Len())
	}
}

func TestUpdateValidatesAndPreservesCompletion(t *testing.T) {
	s := New()
	task, err := s.Add(Fields{Description: "Review", Date: jan10, Start: "14:00", End: "15:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.ToggleComplete(task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := s.Update(task.ID, Fields{Description: "Review v2", Date: jan10, Start: "16:00", End: "15:00"}); !errors.Is(err, model.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
	got, _ := s.Get(task.ID)
	if got.Description != "Review" {
		t.Fatalf("rejected update must leave the task unchanged, got %q", got.Description)
	}

	if err := s.Update(task.ID, Fields{Description: "Review v2", Date: jan10, Start: "15:00", End: "16:00"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = s.Get(task.ID)
	if got.Description != "Review v2" || !got.Completed {
		t.Fatalf("update must apply fields and keep completion: %#v", got)
	}
}

func TestMissingIDsReportNotFound(t *testing.T) {
	s := New()
	if err := s.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
	if err := s.ToggleComplete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle: expected ErrNotFound, got %v", err)
	}
	if err := s.Update("ghost", Fields{Description: "x", Date: jan10, Start: "09:00", End: "10:00"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.Reschedule("ghost", jan10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("reschedule: expected ErrNotFound, got %v", err)
	}
}

func TestDayViewOrderingStable(t *testing.T) {
	s := New()
	mustAdd := func(desc, start, end string) model.Task {
		t.Helper()
		task, err := s.Add(Fields{Description: desc, Date: jan10, Start: start, End: end})
		if err != nil {
			t.Fatalf("add %s: %v", desc, err)
		}
		return task
	}
	mustAdd("late", "15:00", "16:00")
	mustAdd("early", "08:00", "08:30")
	mustAdd("tie-first", "12:00", "12:30")
	mustAdd("tie-second", "12:00", "13:00")
	if _, err := s.Add(Fields{Description: "other day", Date: jan10.AddDays(1), Start: "00:00", End: "00:10"}); err != nil {
		t.Fatalf("add other day: %v", err)
	}

	day := TasksOn(s, jan10)
	want := []string{"early", "tie-first", "tie-second", "late"}
	if len(day) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(day))
	}
	for i, desc := range want {
		if day[i].Description != desc {
			t.Fatalf("position %d: expected %q, got %q", i, desc, day[i].Description)
		}
	}
}

func TestOverdueClassification(t *testing.T) {
	s := New()
	yesterday := jan10.AddDays(-1)
	late, err := s.Add(Fields{Description: "Late", Date: yesterday, Start: "23:00", End: "23:59"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(Fields{Description: "Later today", Date: jan10, Start: "10:00", End: "11:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	now := model.Instant{Date: jan10, Clock: model.ClockTime{Hour: 0, Minute: 1}}
	over := Overdue(s, now)
	if len(over) != 1 || over[0].ID != late.ID {
		t.Fatalf("expected only the yesterday task overdue, got %#v", over)
	}

	if err := s.ToggleComplete(late.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if over := Overdue(s, now); len(over) != 0 {
		t.Fatalf("completed task must never be overdue, got %#v", over)
	}
}

func TestOverdueBoundaryIsStrict(t *testing.T) {
	s := New()
	task, err := s.Add(Fields{Description: "Deadline", Date: jan10, Start: "09:00", End: "23:59"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	atEnd := model.Instant{Date: jan10, Clock: model.ClockTime{Hour: 23, Minute: 59}}
	if over := Overdue(s, atEnd); len(over) != 0 {
		t.Fatalf("task is not overdue at its own end time, got %#v", over)
	}
	pastEnd := model.Instant{Date: jan10.AddDays(1), Clock: model.ClockTime{}}
	over := Overdue(s, pastEnd)
	if len(over) != 1 || over[0].ID != task.ID {
		t.Fatalf("expected task overdue after day rollover, got %#v", over)
	}
}

func TestRescheduleClearsOverdue(t *testing.T) {
	s := New()
	task, err := s.Add(Fields{Description: "Slipped", Date: jan10.AddDays(-3), Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	now := model.Instant{Date: jan10, Clock: model.ClockTime{Hour: 8}}
	if over := Overdue(s, now); len(over) != 1 {
		t.Fatalf("expected 1 overdue task, got %d", len(over))
	}

	if err := s.Reschedule(task.ID, jan10); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if over := Overdue(s, now); len(over) != 0 {
		t.Fatalf("rescheduled task must leave the overdue set, got %#v", over)
	}
	got, _ := s.Get(task.ID)
	if got.Completed {
		t.Fatal("reschedule must not alter completion")
	}
}

func TestNotesAndDirtyTracking(t *testing.T) {
	s := FromSnapshot(nil, "remember the milk")
	if s.Dirty() {
		t.Fatal("freshly loaded store must be clean")
	}
	if s.Notes() != "remember the milk" {
		t.Fatalf("unexpected notes: %q", s.Notes())
	}

	s.SetNotes("remember the milk")
	if s.Dirty() {
		t.Fatal("setting identical notes must not dirty the store")
	}
	s.SetNotes("remember the milk\nand eggs")
	if !s.Dirty() {
		t.Fatal("changed notes must dirty the store")
	}
	s.MarkClean()
	if s.Dirty() {
		t.Fatal("MarkClean must clear the dirty flag")
	}
}

func TestIDsNeverReused(t *testing.T) {
	s := New()
	first, err := s.Add(Fields{Description: "one", Date: jan10, Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := s.Add(Fields{Description: "two", Date: jan10, Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("identifiers must never be reused")
	}
}
