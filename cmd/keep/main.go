package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"keep/internal/config"
	"keep/internal/storage"
	"keep/internal/store"
	"keep/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "keep failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrCreate(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = config.FromEnv(cfg)

	gateway, cleanup, err := openGateway(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	s, loadWarning := loadStore(gateway)

	m := update.NewModel(s, gateway, cfg)
	if loadWarning != "" {
		m.Status = update.StatusBar{Text: loadWarning, IsError: true}
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openGateway(cfg config.Config) (storage.Gateway, func(), error) {
	if cfg.Backend == config.BackendSQLite {
		gw, err := storage.OpenSQLite(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { _ = gw.Close() }, nil
	}
	return storage.NewJSONFile(cfg.DataPath), func() {}, nil
}

// loadStore degrades to an empty store when the snapshot cannot be read;
// the warning surfaces in the status bar instead of aborting the session.
func loadStore(gateway storage.Gateway) (*store.Store, string) {
	snap, err := gateway.Load()
	if err != nil {
		return store.New(), fmt.Sprintf("starting empty: %v", err)
	}
	tasks, notes, err := storage.DecodeSnapshot(snap)
	if err != nil {
		return store.New(), fmt.Sprintf("starting empty: %v", err)
	}
	return store.FromSnapshot(tasks, notes), ""
}
