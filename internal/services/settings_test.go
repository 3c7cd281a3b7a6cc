package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/repository/mock"
	"github.com/abrezinsky/arena/internal/services"
	"github.com/abrezinsky/arena/internal/testutil"
)

func TestSettingsService_BaseURL(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	url, err := svc.GetBaseURL(ctx)
	if err != nil || url != "" {
		t.Fatalf("expected empty base URL, got %q, %v", url, err)
	}
	if err := svc.SetBaseURL(ctx, "http://192.168.1.5:8080"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}
	if url, _ := svc.GetBaseURL(ctx); url != "http://192.168.1.5:8080" {
		t.Errorf("unexpected base URL %q", url)
	}
}

func TestSettingsService_TickInterval(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	d, err := svc.TickInterval(ctx)
	if err != nil || d != time.Second {
		t.Fatalf("expected default 1s, got %v, %v", d, err)
	}

	if err := svc.SetTickInterval(ctx, 250*time.Millisecond); err != nil {
		t.Fatalf("SetTickInterval failed: %v", err)
	}
	if d, _ := svc.TickInterval(ctx); d != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", d)
	}

	for _, bad := range []time.Duration{0, 100 * time.Millisecond, 2 * time.Minute} {
		if err := svc.SetTickInterval(ctx, bad); !errors.Is(err, services.ErrInvalidTickInterval) {
			t.Errorf("SetTickInterval(%v) = %v, want ErrInvalidTickInterval", bad, err)
		}
	}
}

func TestSettingsService_TickIntervalGarbageFallsBack(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	repo.SetSetting(ctx, "tick_interval_ms", "soon")
	if d, err := svc.TickInterval(ctx); err != nil || d != services.DefaultTickInterval {
		t.Errorf("expected default, got %v, %v", d, err)
	}
}

func TestSettingsService_TickIntervalOutOfRangeIsClamped(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	tests := []struct {
		stored string
		want   time.Duration
	}{
		{"0", services.MinTickInterval},
		{"-500", services.MinTickInterval},
		{"10", services.MinTickInterval},
		{"600000", services.MaxTickInterval},
		{"60000", services.MaxTickInterval},
		{"750", 750 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			repo.SetSetting(ctx, "tick_interval_ms", tt.stored)
			d, err := svc.TickInterval(ctx)
			if err != nil || d != tt.want {
				t.Errorf("TickInterval() = %v, %v, want %v", d, err, tt.want)
			}
		})
	}
}

func TestSettingsService_TickIntervalDBError(t *testing.T) {
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	mockRepo.GetSettingError = errors.New("database locked")
	svc := services.NewSettingsService(logger.New(), mockRepo)

	if _, err := svc.TickInterval(context.Background()); err == nil {
		t.Error("expected database error")
	}
}

func TestSettingsService_ResetTables(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	if _, err := svc.ResetTables(ctx, nil); !errors.Is(err, services.ErrNoTablesSpecified) {
		t.Errorf("expected ErrNoTablesSpecified, got %v", err)
	}

	result, err := svc.ResetTables(ctx, []string{"entries", "wallet"})
	if err != nil {
		t.Fatalf("ResetTables failed: %v", err)
	}
	if len(result.Cleared) != 1 || result.Cleared[0] != "entries" {
		t.Errorf("unexpected cleared list %v", result.Cleared)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected one error for the non-whitelisted table, got %v", result.Errors)
	}
}

func TestSettingsService_ResetLeadersDropsCache(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	c := &memoryCache{}
	board := services.NewLeaderboardService(logger.New(), repo, c)
	svc := services.NewSettingsService(logger.New(), repo)
	svc.SetLeaderboardCache(c)
	ctx := context.Background()

	board.SeedMock(ctx)
	if lb, _ := board.Leaderboard(ctx, 0); len(lb.Podium) != 3 || !c.set {
		t.Fatalf("expected a cached board, got %+v", lb)
	}

	if _, err := svc.ResetTables(ctx, []string{"leaders"}); err != nil {
		t.Fatalf("ResetTables failed: %v", err)
	}
	if c.set {
		t.Error("expected the cached board to be dropped")
	}
	lb, _ := board.Leaderboard(ctx, 0)
	if len(lb.Podium) != 0 || len(lb.Table) != 0 {
		t.Errorf("expected an empty board after reset, got %+v", lb)
	}
}

func TestSettingsService_ResetTransactionsZeroesBalance(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	wallet := services.NewWalletService(logger.New(), repo, testutil.NewClock(epoch), nil)
	svc := services.NewSettingsService(logger.New(), repo)
	ctx := context.Background()

	wallet.SeedMock(ctx)
	if _, err := svc.ResetTables(ctx, []string{"transactions"}); err != nil {
		t.Fatalf("ResetTables failed: %v", err)
	}
	if w, _ := wallet.Wallet(ctx); w.BalanceCents != 0 {
		t.Errorf("expected zero balance, got %d", w.BalanceCents)
	}
	if txs, _ := wallet.Transactions(ctx, listing.TxFilter{}); len(txs) != 0 {
		t.Errorf("expected empty history, got %d", len(txs))
	}
}
