package services

import (
	"context"
	"time"

	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/models"
)

// CompetitionServicer defines the interface for competition operations
type CompetitionServicer interface {
	List(ctx context.Context, f listing.Filter, lang i18n.Language) ([]CompetitionView, error)
	Get(ctx context.Context, id int, lang i18n.Language) (*CompetitionView, error)
	Join(ctx context.Context, id int) (*models.TournamentEntry, error)
	Create(ctx context.Context, in CompetitionInput) (int64, error)
	Delete(ctx context.Context, id int) error
	ShareURL(ctx context.Context, id int) (string, error)
	ShareQR(ctx context.Context, id int) ([]byte, error)
	SeedMock(ctx context.Context) (int, error)
}

// WalletServicer defines the interface for wallet operations
type WalletServicer interface {
	Wallet(ctx context.Context) (*models.Wallet, error)
	Deposit(ctx context.Context, req DepositRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req WithdrawRequest) (*models.Transaction, error)
	Transactions(ctx context.Context, f listing.TxFilter) ([]models.Transaction, error)
	Settle(ctx context.Context, id string) error
	SeedMock(ctx context.Context) (int, error)
}

// TournamentServicer defines the interface for tournament entry operations
type TournamentServicer interface {
	List(ctx context.Context) ([]models.TournamentEntry, error)
	Grouped(ctx context.Context) (*TournamentGroups, error)
	SetResult(ctx context.Context, id int, r EntryResult) error
	SeedMock(ctx context.Context) (int, error)
}

// LeaderboardServicer defines the interface for leaderboard operations
type LeaderboardServicer interface {
	Leaderboard(ctx context.Context, limit int) (*Leaderboard, error)
	Upsert(ctx context.Context, l models.Leader) error
	SeedMock(ctx context.Context) (int, error)
}

// PreferencesServicer defines the interface for preference operations
type PreferencesServicer interface {
	Get() PreferencesView
	Language() i18n.Language
	Update(p models.Preferences) (PreferencesView, error)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
	TickInterval(ctx context.Context) (time.Duration, error)
	SetTickInterval(ctx context.Context, d time.Duration) error
	ResetTables(ctx context.Context, tables []string) (*ResetTablesResult, error)
}

// Ensure concrete types implement interfaces
var (
	_ CompetitionServicer = (*CompetitionService)(nil)
	_ WalletServicer      = (*WalletService)(nil)
	_ TournamentServicer  = (*TournamentService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
	_ PreferencesServicer = (*PreferencesService)(nil)
	_ SettingsServicer    = (*SettingsService)(nil)
)
