package repository

import (
	"context"
	"time"

	"github.com/abrezinsky/arena/internal/models"
)

// CompetitionRepository defines competition data operations
type CompetitionRepository interface {
	ListCompetitions(ctx context.Context) ([]models.Competition, error)
	GetCompetition(ctx context.Context, id int) (*models.Competition, error)
	CreateCompetition(ctx context.Context, c models.Competition) (int64, error)
	DeleteCompetition(ctx context.Context, id int) error
	CountCompetitions(ctx context.Context) (int, error)
	JoinCompetition(ctx context.Context, competitionID int, joinedAt time.Time) (*models.TournamentEntry, error)
}

// WalletRepository defines wallet data operations
type WalletRepository interface {
	GetWallet(ctx context.Context) (*models.Wallet, error)
	SetBalance(ctx context.Context, cents int64) error
	ResetWallet(ctx context.Context) error
	RecordTransaction(ctx context.Context, t models.Transaction, deltaCents int64) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id string, status models.TxStatus) error
}

// EntryRepository defines tournament entry data operations
type EntryRepository interface {
	ListEntries(ctx context.Context) ([]models.TournamentEntry, error)
	GetEntry(ctx context.Context, id int) (*models.TournamentEntry, error)
	CreateEntry(ctx context.Context, e models.TournamentEntry) (int64, error)
	UpdateEntryResult(ctx context.Context, id int, status models.EntryStatus, rank int, prize float64, reason string) error
}

// LeaderRepository defines leaderboard data operations
type LeaderRepository interface {
	ListLeaders(ctx context.Context, limit int) ([]models.Leader, error)
	UpsertLeader(ctx context.Context, l models.Leader) error
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	ClearTable(ctx context.Context, table string) error
}

// FullRepository combines all repository interfaces
type FullRepository interface {
	CompetitionRepository
	WalletRepository
	EntryRepository
	LeaderRepository
	SettingsRepository
}

var _ FullRepository = (*Repository)(nil)
