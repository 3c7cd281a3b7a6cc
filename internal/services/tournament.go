package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/repository"
)

// TournamentService manages the user's tournament entries
type TournamentService struct {
	log   logger.Logger
	repo  repository.EntryRepository
	clock Clock
}

// NewTournamentService creates a new TournamentService
func NewTournamentService(log logger.Logger, repo repository.EntryRepository, clock Clock) *TournamentService {
	return &TournamentService{log: log, repo: repo, clock: clock}
}

// TournamentGroups splits entries by status for the my-tournaments tabs
type TournamentGroups struct {
	Ongoing     []models.TournamentEntry `json:"ongoing"`
	UnderReview []models.TournamentEntry `json:"under_review"`
	Finished    []models.TournamentEntry `json:"finished"`
	Canceled    []models.TournamentEntry `json:"canceled"`
}

// List returns every entry, most recent first
func (s *TournamentService) List(ctx context.Context) ([]models.TournamentEntry, error) {
	return s.repo.ListEntries(ctx)
}

// Grouped returns entries split by status; every group is non-nil
func (s *TournamentService) Grouped(ctx context.Context) (*TournamentGroups, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	g := &TournamentGroups{
		Ongoing:     []models.TournamentEntry{},
		UnderReview: []models.TournamentEntry{},
		Finished:    []models.TournamentEntry{},
		Canceled:    []models.TournamentEntry{},
	}
	for _, e := range entries {
		switch e.Status {
		case models.EntryOngoing:
			g.Ongoing = append(g.Ongoing, e)
		case models.EntryUnderReview:
			g.UnderReview = append(g.UnderReview, e)
		case models.EntryFinished:
			g.Finished = append(g.Finished, e)
		case models.EntryCanceled:
			g.Canceled = append(g.Canceled, e)
		default:
			s.log.Warn("Entry with unknown status", "id", e.ID, "status", e.Status)
		}
	}
	return g, nil
}

// EntryResult is an admin update to an entry
type EntryResult struct {
	Status models.EntryStatus `json:"status"`
	Rank   int                `json:"rank"`
	Prize  float64            `json:"prize"`
	Reason string             `json:"reason"`
}

// SetResult moves an entry to a new status with its rank and prize
func (s *TournamentService) SetResult(ctx context.Context, id int, r EntryResult) error {
	if !r.Status.Valid() {
		return ErrInvalidEntryKind
	}
	if r.Rank < 0 || !nonNegative(r.Prize) {
		return ErrInvalidEntry
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Status == models.EntryCanceled && r.Reason == "" {
		return ErrCancelReason
	}
	if r.Status != models.EntryCanceled {
		r.Reason = ""
	}

	err := s.repo.UpdateEntryResult(ctx, id, r.Status, r.Rank, r.Prize, r.Reason)
	if err == repository.ErrNotFound {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info("Tournament entry updated", "id", id, "status", r.Status, "rank", r.Rank)
	return nil
}

// SeedMock inserts a history of past entries
func (s *TournamentService) SeedMock(ctx context.Context) (int, error) {
	now := s.clock.Now()
	mock := []models.TournamentEntry{
		{Title: "Bitcoin Breakout", Status: models.EntryUnderReview, Participants: 640, Rank: 12, JoinedAt: now.Add(-3 * 24 * time.Hour)},
		{Title: "EUR/USD Showdown", Status: models.EntryFinished, Participants: 320, Prize: 750, Rank: 2, JoinedAt: now.Add(-12 * 24 * time.Hour)},
		{Title: "Meme Coin Madness", Status: models.EntryFinished, Participants: 1500, Rank: 87, JoinedAt: now.Add(-20 * 24 * time.Hour)},
		{Title: "Oil Futures Open", Status: models.EntryCanceled, Participants: 45, CancelReason: "Not enough participants", JoinedAt: now.Add(-30 * 24 * time.Hour)},
	}

	var added int
	for _, e := range mock {
		if _, err := s.repo.CreateEntry(ctx, e); err != nil {
			return added, fmt.Errorf("failed to seed entry %q: %w", e.Title, err)
		}
		added++
	}
	return added, nil
}
