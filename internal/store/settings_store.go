package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"chartleap/internal/domain"
)

const settingsFilename = "settings.json"

// SettingsFileStore persists plot settings under a home directory.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// Path returns the settings file location.
func (s *SettingsFileStore) Path() string {
	return filepath.Join(s.dir, settingsFilename)
}

// LoadSettings reads the settings file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()
	if _, err := readJSON(s.Path(), &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// SaveSettings validates and writes settings.
func (s *SettingsFileStore) SaveSettings(settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), settings, 0o644)
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
