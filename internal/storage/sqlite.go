package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteGateway stores snapshots in a sqlite database. A save replaces
// the full task set and notes inside one transaction, keeping the
// whole-snapshot semantics of the JSON backend.
type SQLiteGateway struct {
	db *sql.DB
}

func NewSQLiteGateway(db *sql.DB) (*SQLiteGateway, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if err := MigrateUp(db); err != nil {
		return nil, err
	}
	return &SQLiteGateway{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteGateway, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrPersistence, err)
	}
	gw, err := NewSQLiteGateway(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return gw, nil
}

func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

func (g *SQLiteGateway) Load() (Snapshot, error) {
	rows, err := g.db.Query(`
		SELECT id, description, date, start_time, end_time, completed
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: query tasks: %v", ErrPersistence, err)
	}
	defer rows.Close()

	snap := Snapshot{Tasks: make([]TaskRecord, 0)}
	for rows.Next() {
		var rec TaskRecord
		var completed int
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.Date, &rec.Start, &rec.End, &completed); err != nil {
			return Snapshot{}, fmt.Errorf("%w: scan task: %v", ErrPersistence, err)
		}
		rec.Completed = completed != 0
		snap.Tasks = append(snap.Tasks, rec)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: iterate tasks: %v", ErrPersistence, err)
	}

	var notes string
	err = g.db.QueryRow(`SELECT body FROM notes WHERE id = 1`).Scan(&notes)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: query notes: %v", ErrPersistence, err)
	}
	snap.Notes = notes
	return snap, nil
}

func (g *SQLiteGateway) Save(snap Snapshot) error {
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrPersistence, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("%w: clear tasks: %v", ErrPersistence, err)
	}
	for i, rec := range snap.Tasks {
		if _, err := tx.Exec(`
			INSERT INTO tasks (id, description, date, start_time, end_time, completed, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Description, rec.Date, rec.Start, rec.End, boolInt(rec.Completed), i,
		); err != nil {
			return fmt.Errorf("%w: insert task %s: %v", ErrPersistence, rec.ID, err)
		}
	}
	if _, err := tx.Exec(`
		INSERT INTO notes (id, body) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body`, snap.Notes,
	); err != nil {
		return fmt.Errorf("%w: upsert notes: %v", ErrPersistence, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrPersistence, err)
	}
	return nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
