package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSONFile persists snapshots to a single JSON file. Saves go through a
// temporary file and a rename so a crash can never leave a half-written
// snapshot behind.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (g *JSONFile) Path() string {
	return g.path
}

func (g *JSONFile) Load() (Snapshot, error) {
	raw, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("%w: read %s: %v", ErrPersistence, g.path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return Snapshot{}, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode %s: %v", ErrPersistence, g.path, err)
	}
	return snap, nil
}

func (g *JSONFile) Save(snap Snapshot) error {
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}
	dir := filepath.Dir(g.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", ErrPersistence, dir, err)
		}
	}
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrPersistence, g.path, err)
	}
	return nil
}
