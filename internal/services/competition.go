package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/abrezinsky/arena/internal/errors"
	"github.com/abrezinsky/arena/internal/format"
	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/repository"
	"github.com/abrezinsky/arena/internal/status"
)

// CompetitionBroadcaster pushes competition changes to live clients
type CompetitionBroadcaster interface {
	BroadcastCompetition(view CompetitionView)
}

// BaseURLProvider supplies the public URL used in share links
type BaseURLProvider interface {
	GetBaseURL(ctx context.Context) (string, error)
}

// CompetitionService handles browsing, joining and administering competitions
type CompetitionService struct {
	log         logger.Logger
	repo        repository.CompetitionRepository
	clock       Clock
	links       BaseURLProvider
	metrics     *metrics.Metrics
	broadcaster CompetitionBroadcaster
}

// NewCompetitionService creates a new CompetitionService
func NewCompetitionService(log logger.Logger, repo repository.CompetitionRepository, clock Clock, links BaseURLProvider) *CompetitionService {
	return &CompetitionService{log: log, repo: repo, clock: clock, links: links}
}

// SetBroadcaster sets where competition updates are pushed
func (s *CompetitionService) SetBroadcaster(b CompetitionBroadcaster) {
	s.broadcaster = b
}

// SetMetrics attaches a metrics registry
func (s *CompetitionService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// CompetitionDisplay carries the preformatted strings shown on a card
type CompetitionDisplay struct {
	EntryFee    string `json:"entry_fee"`
	PrizePool   string `json:"prize_pool"`
	Countdown   string `json:"countdown"`
	Compact     string `json:"compact_countdown"`
	StatusLabel string `json:"status_label"`
}

// CompetitionView is a competition together with its state at one instant
type CompetitionView struct {
	models.Competition
	Status           status.Status      `json:"status"`
	CountdownTarget  time.Time          `json:"countdown_target"`
	Countdown        status.Parts       `json:"countdown"`
	Badge            status.Badge       `json:"duration_badge"`
	Joinable         bool               `json:"joinable"`
	Full             bool               `json:"full"`
	UnallocatedPrize float64            `json:"unallocated_prize"`
	Display          CompetitionDisplay `json:"display"`
}

var statusLabels = map[status.Status]i18n.Key{
	status.Upcoming: i18n.StatusUpcoming,
	status.Live:     i18n.StatusLive,
	status.Ended:    i18n.StatusEnded,
}

// NewCompetitionView derives the state of c at now and formats it for lang
func NewCompetitionView(c models.Competition, now time.Time, lang i18n.Language) CompetitionView {
	st := status.Derive(now, c.StartsAt, c.EndsAt)
	parts := st.Parts()
	return CompetitionView{
		Competition:      c,
		Status:           st.Status,
		CountdownTarget:  st.Target,
		Countdown:        parts,
		Badge:            status.DurationBadge(c.StartsAt, c.EndsAt),
		Joinable:         st.Joinable() && !c.Full(),
		Full:             c.Full(),
		UnallocatedPrize: c.PrizePool - c.AllocatedPrize(),
		Display: CompetitionDisplay{
			EntryFee:    format.Money(c.EntryFee, c.FeeCurrency),
			PrizePool:   format.Money(c.PrizePool, c.PrizeCurrency),
			Countdown:   format.Countdown(parts),
			Compact:     format.CompactCountdown(st.Remaining, i18n.T(lang, i18n.StatusStarted)),
			StatusLabel: i18n.T(lang, statusLabels[st.Status]),
		},
	}
}

// Now returns the instant views are derived at
func (s *CompetitionService) Now() time.Time {
	return s.clock.Now()
}

// List returns the competitions matching f, derived and formatted at the current instant
func (s *CompetitionService) List(ctx context.Context, f listing.Filter, lang i18n.Language) ([]CompetitionView, error) {
	return s.ListAt(ctx, f, lang, s.clock.Now())
}

// ListAt is List evaluated at now
func (s *CompetitionService) ListAt(ctx context.Context, f listing.Filter, lang i18n.Language, now time.Time) ([]CompetitionView, error) {
	all, err := s.repo.ListCompetitions(ctx)
	if err != nil {
		return nil, err
	}
	matched := listing.Competitions(all, f, now)

	views := make([]CompetitionView, 0, len(matched))
	for _, c := range matched {
		views = append(views, NewCompetitionView(c, now, lang))
	}
	return views, nil
}

// Get returns one competition view
func (s *CompetitionService) Get(ctx context.Context, id int, lang i18n.Language) (*CompetitionView, error) {
	c, err := s.repo.GetCompetition(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrCompetitionNotFound
	}
	if err != nil {
		return nil, err
	}
	v := NewCompetitionView(*c, s.clock.Now(), lang)
	return &v, nil
}

// Join enters the user into an upcoming competition with free seats.
// No wallet movement happens.
func (s *CompetitionService) Join(ctx context.Context, id int) (*models.TournamentEntry, error) {
	c, err := s.repo.GetCompetition(ctx, id)
	if err == repository.ErrNotFound {
		s.metrics.ObserveJoin("not_found")
		return nil, ErrCompetitionNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !status.Derive(now, c.StartsAt, c.EndsAt).Joinable() {
		s.metrics.ObserveJoin("closed")
		return nil, ErrCompetitionClosed
	}

	entry, err := s.repo.JoinCompetition(ctx, id, now)
	switch err {
	case nil:
	case repository.ErrAlreadyJoined:
		s.metrics.ObserveJoin("duplicate")
		return nil, ErrAlreadyJoined
	case repository.ErrCompetitionFull:
		s.metrics.ObserveJoin("full")
		return nil, ErrCompetitionFull
	case repository.ErrNotFound:
		s.metrics.ObserveJoin("not_found")
		return nil, ErrCompetitionNotFound
	default:
		return nil, err
	}

	s.metrics.ObserveJoin("ok")
	s.log.Info("Joined competition", "competition_id", id, "participants", entry.Participants)

	if s.broadcaster != nil {
		c.Participants = entry.Participants
		s.broadcaster.BroadcastCompetition(NewCompetitionView(*c, now, i18n.English))
	}
	return entry, nil
}

// CompetitionInput is the data needed to create a competition
type CompetitionInput struct {
	Title          string              `json:"title"`
	Market         models.Market       `json:"market"`
	EntryFee       float64             `json:"entry_fee"`
	FeeCurrency    string              `json:"fee_currency"`
	Capacity       *int                `json:"capacity"`
	StartsAt       time.Time           `json:"starts_at"`
	EndsAt         time.Time           `json:"ends_at"`
	PrizePool      float64             `json:"prize_pool"`
	PrizeCurrency  string              `json:"prize_currency"`
	PrizeBreakdown []models.PrizePlace `json:"prize_breakdown"`
}

func (in CompetitionInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return errors.Validation("title is required")
	case !in.Market.Valid():
		return errors.Validationf("unknown market %q", in.Market)
	case !nonNegative(in.EntryFee):
		return errors.Validation("entry fee must be a non-negative number")
	case !nonNegative(in.PrizePool):
		return errors.Validation("prize pool must be a non-negative number")
	case in.Capacity != nil && *in.Capacity < 0:
		return errors.Validation("capacity must not be negative")
	case in.StartsAt.IsZero() || in.EndsAt.IsZero():
		return errors.Validation("starts_at and ends_at are required")
	case in.EndsAt.Before(in.StartsAt):
		return errors.Validation("ends_at must not be before starts_at")
	}

	seen := make(map[int]bool, len(in.PrizeBreakdown))
	for _, p := range in.PrizeBreakdown {
		if p.Place < 1 {
			return errors.Validationf("prize place %d must be at least 1", p.Place)
		}
		if seen[p.Place] {
			return errors.Validationf("prize place %d is listed twice", p.Place)
		}
		if !nonNegative(p.Amount) {
			return errors.Validationf("prize for place %d must be a non-negative number", p.Place)
		}
		seen[p.Place] = true
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Create validates and stores a new competition. A prize breakdown that
// does not add up to the pool is logged, not rejected.
func (s *CompetitionService) Create(ctx context.Context, in CompetitionInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	c := models.Competition{
		Title:          strings.TrimSpace(in.Title),
		Market:         in.Market,
		EntryFee:       in.EntryFee,
		FeeCurrency:    currencyOrDefault(in.FeeCurrency),
		Capacity:       in.Capacity,
		StartsAt:       in.StartsAt,
		EndsAt:         in.EndsAt,
		PrizePool:      in.PrizePool,
		PrizeCurrency:  currencyOrDefault(in.PrizeCurrency),
		PrizeBreakdown: in.PrizeBreakdown,
		CreatedAt:      s.clock.Now(),
	}
	if gap := c.PrizePool - c.AllocatedPrize(); gap != 0 && len(c.PrizeBreakdown) > 0 {
		s.log.Warn("Prize breakdown does not match prize pool", "title", c.Title, "pool", c.PrizePool, "unallocated", gap)
	}

	id, err := s.repo.CreateCompetition(ctx, c)
	if err != nil {
		return 0, err
	}
	s.log.Info("Competition created", "id", id, "title", c.Title)
	return id, nil
}

func currencyOrDefault(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.DefaultCurrency
	}
	return code
}

// Delete removes a competition
func (s *CompetitionService) Delete(ctx context.Context, id int) error {
	err := s.repo.DeleteCompetition(ctx, id)
	if err == repository.ErrNotFound {
		return ErrCompetitionNotFound
	}
	return err
}

// ShareURL returns the public link to a competition
func (s *CompetitionService) ShareURL(ctx context.Context, id int) (string, error) {
	if _, err := s.repo.GetCompetition(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return "", ErrCompetitionNotFound
		}
		return "", err
	}
	baseURL, err := s.links.GetBaseURL(ctx)
	if err != nil {
		return "", err
	}
	if baseURL == "" {
		return "", ErrBaseURLNotSet
	}
	return fmt.Sprintf("%s/competitions/%d", strings.TrimSuffix(baseURL, "/"), id), nil
}

// ShareQR renders the share link as a PNG QR code
func (s *CompetitionService) ShareQR(ctx context.Context, id int) ([]byte, error) {
	url, err := s.ShareURL(ctx, id)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(url, qrcode.Medium, 256)
}

// SeedMock inserts a spread of sample competitions around the current instant
func (s *CompetitionService) SeedMock(ctx context.Context) (int, error) {
	now := s.clock.Now().Truncate(time.Minute)
	seats := func(n int) *int { return &n }

	mock := []models.Competition{
		{Title: "Altcoin Arena", Market: models.MarketCrypto, EntryFee: 0, Participants: 980,
			StartsAt: now.Add(-10 * 24 * time.Hour), EndsAt: now.Add(-3 * 24 * time.Hour), PrizePool: 1500,
			PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 1000}, {Place: 2, Amount: 500}}},
		{Title: "Crypto Marathon", Market: models.MarketCrypto, EntryFee: 50, Participants: 412,
			StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(5 * 24 * time.Hour), PrizePool: 10000,
			PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 5000}, {Place: 2, Amount: 3000}, {Place: 3, Amount: 2000}}},
		{Title: "Gold Rush Weekly", Market: models.MarketForex, EntryFee: 25, Participants: 96,
			StartsAt: now.Add(2 * 24 * time.Hour), EndsAt: now.Add(9 * 24 * time.Hour), PrizePool: 8000,
			PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 4000}, {Place: 2, Amount: 2500}, {Place: 3, Amount: 1000}}},
		{Title: "Scalpers Cup", Market: models.MarketCrypto, EntryFee: 200, Participants: 50, Capacity: seats(50),
			StartsAt: now.Add(30 * time.Minute), EndsAt: now.Add(12 * time.Hour), PrizePool: 20000,
			PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 12000}, {Place: 2, Amount: 8000}}},
		{Title: "Forex Sprint", Market: models.MarketForex, EntryFee: 100, Participants: 37, Capacity: seats(200),
			StartsAt: now.Add(3 * time.Hour), EndsAt: now.Add(27 * time.Hour), PrizePool: 5000,
			PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 2500}, {Place: 2, Amount: 1500}, {Place: 3, Amount: 1000}}},
	}

	var added int
	var firstError error
	for _, c := range mock {
		c.FeeCurrency = models.DefaultCurrency
		c.PrizeCurrency = models.DefaultCurrency
		c.CreatedAt = now
		if _, err := s.repo.CreateCompetition(ctx, c); err != nil {
			s.log.Error("Error seeding competition", "title", c.Title, "error", err)
			if firstError == nil {
				firstError = fmt.Errorf("failed to seed competition %q: %w", c.Title, err)
			}
			continue
		}
		added++
	}
	return added, firstError
}
