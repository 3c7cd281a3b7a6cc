package services

import (
	"context"
	"strconv"
	"time"

	"github.com/abrezinsky/arena/internal/cache"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/repository"
)

const (
	MinTickInterval     = 250 * time.Millisecond
	MaxTickInterval     = 60 * time.Second
	DefaultTickInterval = time.Second
)

// SettingsService handles runtime settings stored in the database
type SettingsService struct {
	log     logger.Logger
	repo    repository.SettingsRepository
	leaders cache.LeaderboardCache
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo, leaders: cache.Noop{}}
}

// SetLeaderboardCache sets the cache dropped when the leaders table is reset
func (s *SettingsService) SetLeaderboardCache(c cache.LeaderboardCache) {
	if c == nil {
		c = cache.Noop{}
	}
	s.leaders = c
}

// GetBaseURL returns the public base URL used in share links
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "base_url")
	if err == repository.ErrNotFound {
		return "", nil
	}
	return value, err
}

// SetBaseURL saves the public base URL
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, "base_url", url)
}

// TickInterval returns how often live countdowns are pushed.
// Missing or unparsable values fall back to DefaultTickInterval; stored
// values outside [MinTickInterval, MaxTickInterval] are clamped.
func (s *SettingsService) TickInterval(ctx context.Context) (time.Duration, error) {
	value, err := s.repo.GetSetting(ctx, "tick_interval_ms")
	if err == repository.ErrNotFound {
		return DefaultTickInterval, nil
	}
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(value)
	if err != nil {
		s.log.Warn("Ignoring invalid tick interval", "value", value)
		return DefaultTickInterval, nil
	}
	d := time.Duration(ms) * time.Millisecond
	if d < MinTickInterval || d > MaxTickInterval {
		clamped := min(max(d, MinTickInterval), MaxTickInterval)
		s.log.Warn("Clamping out of range tick interval", "value", value, "interval", clamped)
		return clamped, nil
	}
	return d, nil
}

// SetTickInterval stores a new push interval
func (s *SettingsService) SetTickInterval(ctx context.Context, d time.Duration) error {
	if d < MinTickInterval || d > MaxTickInterval {
		return ErrInvalidTickInterval
	}
	return s.repo.SetSetting(ctx, "tick_interval_ms", strconv.FormatInt(d.Milliseconds(), 10))
}

// ResetTablesResult reports which tables were cleared
type ResetTablesResult struct {
	Cleared []string `json:"cleared"`
	Errors  []string `json:"errors,omitempty"`
}

// ResetTables clears the named tables, continuing past failures
func (s *SettingsService) ResetTables(ctx context.Context, tables []string) (*ResetTablesResult, error) {
	if len(tables) == 0 {
		return nil, ErrNoTablesSpecified
	}
	result := &ResetTablesResult{}
	for _, table := range tables {
		if err := s.repo.ClearTable(ctx, table); err != nil {
			s.log.Error("Failed to clear table", "table", table, "error", err)
			result.Errors = append(result.Errors, table+": "+err.Error())
			continue
		}
		result.Cleared = append(result.Cleared, table)
		if table == "leaders" {
			if err := s.leaders.Invalidate(ctx); err != nil {
				s.log.Warn("Leaderboard cache invalidation failed", "error", err)
			}
		}
	}
	s.log.Info("Tables reset", "cleared", result.Cleared)
	return result, nil
}
