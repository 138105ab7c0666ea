// Package config loads and saves the tnj configuration file.
//
// The file is TOML. Missing keys keep their defaults, unknown keys are
// ignored, and a missing file yields Default().
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "tnj"

type Config struct {
	DatabasePath string       `toml:"database_path"`
	Editor       EditorConfig `toml:"editor"`
	KeyBindings  KeyBindings  `toml:"key_bindings"`
}

type EditorConfig struct {
	// HistoryLimit bounds undo per field. 0 selects the buffer default, a
	// negative value disables undo.
	HistoryLimit    int  `toml:"history_limit"`
	ShowLineNumbers bool `toml:"show_line_numbers"`
}

// KeyBindings uses the "Ctrl+z" / "Left" notation. See ParseKeyBinding.
type KeyBindings struct {
	Undo      string `toml:"undo"`
	Redo      string `toml:"redo"`
	WordLeft  string `toml:"word_left"`
	WordRight string `toml:"word_right"`
	Copy      string `toml:"copy"`
	Cut       string `toml:"cut"`
	Paste     string `toml:"paste"`
	SelectAll string `toml:"select_all"`
	Save      string `toml:"save"`
	Quit      string `toml:"quit"`
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Undo:      "Ctrl+z",
		Redo:      "Ctrl+y",
		WordLeft:  "Ctrl+Left",
		WordRight: "Ctrl+Right",
		Copy:      "Ctrl+c",
		Cut:       "Ctrl+x",
		Paste:     "Ctrl+v",
		SelectAll: "Ctrl+a",
		Save:      "Ctrl+s",
		Quit:      "Esc",
	}
}

func Default() Config {
	cfg := Config{
		Editor:      EditorConfig{HistoryLimit: 100},
		KeyBindings: DefaultKeyBindings(),
	}
	if dir, err := DataDir(); err == nil {
		cfg.DatabasePath = filepath.Join(dir, "app.db")
	}
	return cfg
}

// ConfigDir returns the per-user configuration directory for tnj.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// DataDir returns the per-user data directory for tnj: $XDG_DATA_HOME/tnj or
// ~/.local/share/tnj, and the application support directory on macOS.
func DataDir() (string, error) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return ConfigDir()
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("data dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// DefaultPath is the config file location used when no -config flag is given.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path on top of Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.DatabasePath = ExpandPath(cfg.DatabasePath)
	if _, err := cfg.KeyBindings.Resolve(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("save config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
