package storage

import (
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T) *SQLiteGateway {
	t.Helper()
	gw, err := OpenSQLite(filepath.Join(t.TempDir(), "keep-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	gw := setupSQLite(t)

	snap := EncodeSnapshot(sampleTasks(), "sqlite notes")
	if err := gw.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Notes != "sqlite notes" {
		t.Fatalf("notes = %q", got.Notes)
	}
	if len(got.Tasks) != len(snap.Tasks) {
		t.Fatalf("expected %d tasks, got %d", len(snap.Tasks), len(got.Tasks))
	}
	for i := range snap.Tasks {
		if got.Tasks[i] != snap.Tasks[i] {
			t.Fatalf("task %d mismatch:\n got %#v\nwant %#v", i, got.Tasks[i], snap.Tasks[i])
		}
	}
}

func TestSQLiteSaveReplacesPreviousSnapshot(t *testing.T) {
	gw := setupSQLite(t)

	if err := gw.Save(EncodeSnapshot(sampleTasks(), "v1")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	trimmed := sampleTasks()[:1]
	if err := gw.Save(EncodeSnapshot(trimmed, "v2")); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "a1" {
		t.Fatalf("save must replace the whole task set, got %#v", got.Tasks)
	}
	if got.Notes != "v2" {
		t.Fatalf("notes = %q, want v2", got.Notes)
	}
}

func TestSQLiteEmptyDatabaseLoadsEmptySnapshot(t *testing.T) {
	gw := setupSQLite(t)
	got, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tasks) != 0 || got.Notes != "" {
		t.Fatalf("expected empty snapshot, got %#v", got)
	}
}

func TestSQLitePreservesInsertionOrder(t *testing.T) {
	gw := setupSQLite(t)

	snap := Snapshot{
		Tasks: []TaskRecord{
			{ID: "z", Description: "third added first", Date: "2024-01-10", Start: "20:00", End: "21:00"},
			{ID: "a", Description: "first alphabetically", Date: "2024-01-10", Start: "08:00", End: "09:00"},
		},
		Notes: "",
	}
	if err := gw.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := gw.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Tasks[0].ID != "z" || got.Tasks[1].ID != "a" {
		t.Fatalf("load must preserve snapshot order, got %#v", got.Tasks)
	}
}
