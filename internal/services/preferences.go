package services

import (
	"github.com/abrezinsky/arena/internal/errors"
	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/preferences"
)

// PreferencesService exposes the process-wide language and theme
type PreferencesService struct {
	log   logger.Logger
	store *preferences.Store
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(log logger.Logger, store *preferences.Store) *PreferencesService {
	return &PreferencesService{log: log, store: store}
}

// PreferencesView adds the text direction derived from the language
type PreferencesView struct {
	models.Preferences
	Dir string `json:"dir"`
}

// Get returns the current preferences
func (s *PreferencesService) Get() PreferencesView {
	p := s.store.Get()
	return PreferencesView{Preferences: p, Dir: i18n.Language(p.Language).Dir()}
}

// Language returns the current UI language
func (s *PreferencesService) Language() i18n.Language {
	return i18n.Language(s.store.Get().Language)
}

// Update validates and saves new preferences. Empty fields keep their
// current value.
func (s *PreferencesService) Update(p models.Preferences) (PreferencesView, error) {
	current := s.store.Get()
	if p.Language == "" {
		p.Language = current.Language
	}
	if p.Theme == "" {
		p.Theme = current.Theme
	}
	if err := preferences.Validate(p); err != nil {
		return PreferencesView{}, errors.Validation(err.Error())
	}
	if err := s.store.Set(p); err != nil {
		return PreferencesView{}, err
	}
	s.log.Info("Preferences updated", "language", p.Language, "theme", p.Theme)
	return s.Get(), nil
}
