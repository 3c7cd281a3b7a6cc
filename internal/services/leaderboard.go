package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/arena/internal/cache"
	"github.com/abrezinsky/arena/internal/errors"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/repository"
)

// PodiumSize is how many leaders are shown on the podium
const PodiumSize = 3

// LeaderboardService serves the ranked leaderboard, cached when a cache is configured
type LeaderboardService struct {
	log     logger.Logger
	repo    repository.LeaderRepository
	cache   cache.LeaderboardCache
	metrics *metrics.Metrics
}

// NewLeaderboardService creates a new LeaderboardService. A nil cache disables caching.
func NewLeaderboardService(log logger.Logger, repo repository.LeaderRepository, c cache.LeaderboardCache) *LeaderboardService {
	if c == nil {
		c = cache.Noop{}
	}
	return &LeaderboardService{log: log, repo: repo, cache: c}
}

// SetMetrics attaches a metrics registry
func (s *LeaderboardService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// Leaderboard is the podium plus the remaining table rows
type Leaderboard struct {
	Podium []models.Leader `json:"podium"`
	Table  []models.Leader `json:"table"`
}

// Leaderboard returns the top limit leaders; limit <= 0 means all
func (s *LeaderboardService) Leaderboard(ctx context.Context, limit int) (*Leaderboard, error) {
	leaders, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(leaders) {
		leaders = leaders[:limit]
	}

	split := min(PodiumSize, len(leaders))
	return &Leaderboard{
		Podium: append([]models.Leader{}, leaders[:split]...),
		Table:  append([]models.Leader{}, leaders[split:]...),
	}, nil
}

func (s *LeaderboardService) all(ctx context.Context) ([]models.Leader, error) {
	cached, ok, err := s.cache.GetLeaders(ctx)
	if err != nil {
		s.metrics.ObserveCacheLookup("error")
		s.log.Warn("Leaderboard cache read failed", "error", err)
	} else if ok {
		s.metrics.ObserveCacheLookup("hit")
		return cached, nil
	} else {
		s.metrics.ObserveCacheLookup("miss")
	}

	leaders, err := s.repo.ListLeaders(ctx, 0)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLeaders(ctx, leaders); err != nil {
		s.log.Warn("Leaderboard cache write failed", "error", err)
	}
	return leaders, nil
}

// Upsert creates or updates a leader and drops the cached board
func (s *LeaderboardService) Upsert(ctx context.Context, l models.Leader) error {
	l.Handle = strings.TrimSpace(l.Handle)
	if l.Handle == "" || strings.TrimSpace(l.Name) == "" {
		return errors.Validation("name and handle are required")
	}
	if l.Points < 0 {
		return errors.Validation("points must not be negative")
	}
	if err := s.repo.UpsertLeader(ctx, l); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Leaderboard cache invalidation failed", "error", err)
	}
	return nil
}

// SeedMock inserts sample leaders
func (s *LeaderboardService) SeedMock(ctx context.Context) (int, error) {
	mock := []models.Leader{
		{Name: "Sara Ahmadi", Handle: "@sara_fx", Points: 15420, Badges: []string{"champion", "streak"}},
		{Name: "Daniel Kim", Handle: "@dkim", Points: 14980, Badges: []string{"veteran"}},
		{Name: "Reza Karimi", Handle: "@rezatrades", Points: 13210, Badges: []string{"rising"}},
		{Name: "Lena Fischer", Handle: "@lena_f", Points: 11875},
		{Name: "Omar Haddad", Handle: "@omarh", Points: 10340, Badges: []string{"streak"}},
		{Name: "Mina Rostami", Handle: "@minar", Points: 9760},
		{Name: "Jack Turner", Handle: "@jturner", Points: 8420},
	}
	var added int
	for _, l := range mock {
		if err := s.repo.UpsertLeader(ctx, l); err != nil {
			return added, err
		}
		added++
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Leaderboard cache invalidation failed", "error", err)
	}
	return added, nil
}
