package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	appDirName   = "crocpad"
	settingsFile = "notepad.ini"
)

// Store reads and writes the settings file at a fixed path
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns <user config dir>/crocpad/notepad.ini
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, settingsFile), nil
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load parses the settings file. A missing file is created with defaults;
// a file that exists but cannot be parsed is an error.
func (s *Store) Load() (*AppConfig, error) {
	file, err := ini.Load(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", s.path, err)
	}

	cfg := &AppConfig{file: file}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the whole configuration to a temporary sibling file and renames
// it over the settings file, so readers never observe a partial write.
func (s *Store) Save(cfg *AppConfig) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, settingsFile+".*")
	if err != nil {
		return fmt.Errorf("create temporary settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := cfg.file.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings %s: %w", s.path, err)
	}
	return nil
}
