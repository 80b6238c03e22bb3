package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// The snapshot schema ships embedded in the binary. MigrateUp brings a
// fresh database file to the current schema before the first save;
// MigrateDown tears it back to empty, walking the scripts in reverse.

//go:embed migrations/*.sql
var schemaFS embed.FS

func MigrateUp(db *sql.DB) error {
	return applySchema(db, ".up.sql", false)
}

func MigrateDown(db *sql.DB) error {
	return applySchema(db, ".down.sql", true)
}

func applySchema(db *sql.DB, suffix string, reverse bool) error {
	scripts, err := fs.Glob(schemaFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("%w: glob schema scripts: %v", ErrPersistence, err)
	}
	sort.Strings(scripts)
	if reverse {
		for i, j := 0, len(scripts)-1; i < j; i, j = i+1, j-1 {
			scripts[i], scripts[j] = scripts[j], scripts[i]
		}
	}
	for _, script := range scripts {
		body, err := schemaFS.ReadFile(script)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrPersistence, script, err)
		}
		if _, err := db.Exec(string(body)); err != nil {
			return fmt.Errorf("%w: apply %s: %v", ErrPersistence, script, err)
		}
	}
	return nil
}
