// Package config loads the TOML configuration and keymap, creating the
// file with defaults on first run.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataFileName   = ".keep_tasks.json"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Edit       string `toml:"edit"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	PrevDay    string `toml:"prev_day"`
	NextDay    string `toml:"next_day"`
	Notes      string `toml:"notes"`
	Overdue    string `toml:"overdue"`
	Save       string `toml:"save"`
	Palette    string `toml:"palette"`
	Help       string `toml:"help"`
	Reschedule string `toml:"reschedule"`
	Redate     string `toml:"redate"`
}

type Config struct {
	DataPath string `toml:"data_path"`
	Backend  string `toml:"backend"`
	Keys     Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing the defaults there
// first if no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// FromEnv layers KEEP_* environment overrides on top of a base config.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("KEEP_DATA_PATH")); v != "" {
		cfg.DataPath = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("KEEP_BACKEND"))); v != "" {
		cfg.Backend = v
	}
	cfg.normalize()
	return cfg
}

func Default() Config {
	return Config{
		DataPath: defaultDataPath(),
		Backend:  BackendJSON,
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Edit:       "e",
			Toggle:     " ",
			Delete:     "d",
			Up:         "k",
			Down:       "j",
			PrevDay:    "h",
			NextDay:    "l",
			Notes:      "n",
			Overdue:    "o",
			Save:       "ctrl+s",
			Palette:    "/",
			Help:       "?",
			Reschedule: "t",
			Redate:     "r",
		},
	}
}

// DefaultConfigPath is ~/.config/keep/config.toml, falling back to the
// working directory when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "keep", DefaultConfigFileName)
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDataFileName
	}
	return filepath.Join(home, DefaultDataFileName)
}

func (c *Config) normalize() {
	if c.DataPath == "" {
		c.DataPath = defaultDataPath()
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		c.Backend = BackendJSON
	}
}

func write(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
