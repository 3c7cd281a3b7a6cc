package mock

import (
	"context"
	"time"

	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/repository"
)

// Repository wraps a real repository and lets tests inject errors.
//
// Usage:
//
//	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
//	mockRepo.RecordTransactionError = errors.New("database error")
//	svc := services.NewWalletService(log, mockRepo, clock, events.Noop{})
type Repository struct {
	repository.FullRepository

	// ===== Competition Errors =====
	ListCompetitionsError  error
	GetCompetitionError    error
	CreateCompetitionError error
	DeleteCompetitionError error
	CountCompetitionsError error
	JoinCompetitionError   error

	// ===== Wallet Errors =====
	GetWalletError               error
	SetBalanceError              error
	ResetWalletError             error
	RecordTransactionError       error
	ListTransactionsError        error
	UpdateTransactionStatusError error

	// ===== Entry Errors =====
	ListEntriesError       error
	GetEntryError          error
	CreateEntryError       error
	UpdateEntryResultError error

	// ===== Leader Errors =====
	ListLeadersError  error
	UpsertLeaderError error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
	ClearTableError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{FullRepository: real}
}

// ===== Competition Methods =====

func (m *Repository) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	if m.ListCompetitionsError != nil {
		return nil, m.ListCompetitionsError
	}
	return m.FullRepository.ListCompetitions(ctx)
}

func (m *Repository) GetCompetition(ctx context.Context, id int) (*models.Competition, error) {
	if m.GetCompetitionError != nil {
		return nil, m.GetCompetitionError
	}
	return m.FullRepository.GetCompetition(ctx, id)
}

func (m *Repository) CreateCompetition(ctx context.Context, c models.Competition) (int64, error) {
	if m.CreateCompetitionError != nil {
		return 0, m.CreateCompetitionError
	}
	return m.FullRepository.CreateCompetition(ctx, c)
}

func (m *Repository) DeleteCompetition(ctx context.Context, id int) error {
	if m.DeleteCompetitionError != nil {
		return m.DeleteCompetitionError
	}
	return m.FullRepository.DeleteCompetition(ctx, id)
}

func (m *Repository) CountCompetitions(ctx context.Context) (int, error) {
	if m.CountCompetitionsError != nil {
		return 0, m.CountCompetitionsError
	}
	return m.FullRepository.CountCompetitions(ctx)
}

func (m *Repository) JoinCompetition(ctx context.Context, competitionID int, joinedAt time.Time) (*models.TournamentEntry, error) {
	if m.JoinCompetitionError != nil {
		return nil, m.JoinCompetitionError
	}
	return m.FullRepository.JoinCompetition(ctx, competitionID, joinedAt)
}

// ===== Wallet Methods =====

func (m *Repository) GetWallet(ctx context.Context) (*models.Wallet, error) {
	if m.GetWalletError != nil {
		return nil, m.GetWalletError
	}
	return m.FullRepository.GetWallet(ctx)
}

func (m *Repository) SetBalance(ctx context.Context, cents int64) error {
	if m.SetBalanceError != nil {
		return m.SetBalanceError
	}
	return m.FullRepository.SetBalance(ctx, cents)
}

func (m *Repository) ResetWallet(ctx context.Context) error {
	if m.ResetWalletError != nil {
		return m.ResetWalletError
	}
	return m.FullRepository.ResetWallet(ctx)
}

func (m *Repository) RecordTransaction(ctx context.Context, t models.Transaction, deltaCents int64) error {
	if m.RecordTransactionError != nil {
		return m.RecordTransactionError
	}
	return m.FullRepository.RecordTransaction(ctx, t, deltaCents)
}

func (m *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if m.ListTransactionsError != nil {
		return nil, m.ListTransactionsError
	}
	return m.FullRepository.ListTransactions(ctx)
}

func (m *Repository) UpdateTransactionStatus(ctx context.Context, id string, status models.TxStatus) error {
	if m.UpdateTransactionStatusError != nil {
		return m.UpdateTransactionStatusError
	}
	return m.FullRepository.UpdateTransactionStatus(ctx, id, status)
}

// ===== Entry Methods =====

func (m *Repository) ListEntries(ctx context.Context) ([]models.TournamentEntry, error) {
	if m.ListEntriesError != nil {
		return nil, m.ListEntriesError
	}
	return m.FullRepository.ListEntries(ctx)
}

func (m *Repository) GetEntry(ctx context.Context, id int) (*models.TournamentEntry, error) {
	if m.GetEntryError != nil {
		return nil, m.GetEntryError
	}
	return m.FullRepository.GetEntry(ctx, id)
}

func (m *Repository) CreateEntry(ctx context.Context, e models.TournamentEntry) (int64, error) {
	if m.CreateEntryError != nil {
		return 0, m.CreateEntryError
	}
	return m.FullRepository.CreateEntry(ctx, e)
}

func (m *Repository) UpdateEntryResult(ctx context.Context, id int, status models.EntryStatus, rank int, prize float64, reason string) error {
	if m.UpdateEntryResultError != nil {
		return m.UpdateEntryResultError
	}
	return m.FullRepository.UpdateEntryResult(ctx, id, status, rank, prize, reason)
}

// ===== Leader Methods =====

func (m *Repository) ListLeaders(ctx context.Context, limit int) ([]models.Leader, error) {
	if m.ListLeadersError != nil {
		return nil, m.ListLeadersError
	}
	return m.FullRepository.ListLeaders(ctx, limit)
}

func (m *Repository) UpsertLeader(ctx context.Context, l models.Leader) error {
	if m.UpsertLeaderError != nil {
		return m.UpsertLeaderError
	}
	return m.FullRepository.UpsertLeader(ctx, l)
}

// ===== Settings Methods =====

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

func (m *Repository) ClearTable(ctx context.Context, table string) error {
	if m.ClearTableError != nil {
		return m.ClearTableError
	}
	return m.FullRepository.ClearTable(ctx, table)
}
