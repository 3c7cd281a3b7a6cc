// Package preferences persists the process-wide language and theme.
//
// Preferences are read once at start and written back on every change.
package preferences

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/models"
)

// Defaults returns the preferences used when no file exists
func Defaults() models.Preferences {
	return models.Preferences{Language: string(i18n.English), Theme: models.ThemeLight}
}

// Validate checks the language and theme values
func Validate(p models.Preferences) error {
	if _, err := i18n.ParseLanguage(p.Language); err != nil {
		return err
	}
	if !p.Theme.Valid() {
		return fmt.Errorf("unknown theme %q", p.Theme)
	}
	return nil
}

// Store holds the current preferences and the file they live in.
// An empty path keeps them in memory only.
type Store struct {
	mu    sync.RWMutex
	path  string
	prefs models.Preferences
}

// Load reads path, falling back to Defaults when the file is missing.
// Fields missing from the file keep their default values.
func Load(path string) (*Store, error) {
	s := &Store{path: path, prefs: Defaults()}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if err := Validate(s.prefs); err != nil {
		return nil, fmt.Errorf("invalid preferences in %s: %w", path, err)
	}
	return s, nil
}

// Get returns the current preferences
func (s *Store) Get() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Path returns the backing file, or "" for an in-memory store
func (s *Store) Path() string {
	return s.path
}

// Set validates p, saves it and makes it current. Nothing changes when
// validation or saving fails.
func (s *Store) Set(p models.Preferences) error {
	if err := Validate(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(p); err != nil {
		return err
	}
	s.prefs = p
	return nil
}

func (s *Store) save(p models.Preferences) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
