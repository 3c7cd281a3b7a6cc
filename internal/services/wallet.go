package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abrezinsky/arena/internal/events"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/repository"
)

// DepositPresets are the quick-pick deposit amounts
var DepositPresets = []float64{20, 50, 100, 500}

// WalletService handles the balance and its transactions
type WalletService struct {
	log       logger.Logger
	repo      repository.WalletRepository
	clock     Clock
	publisher events.Publisher
	metrics   *metrics.Metrics
	newID     func() string
}

// NewWalletService creates a new WalletService
func NewWalletService(log logger.Logger, repo repository.WalletRepository, clock Clock, publisher events.Publisher) *WalletService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &WalletService{log: log, repo: repo, clock: clock, publisher: publisher, newID: uuid.NewString}
}

// SetMetrics attaches a metrics registry
func (s *WalletService) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// DepositRequest is a request to add funds
type DepositRequest struct {
	Amount float64              `json:"amount"`
	Method models.PaymentMethod `json:"method"`
}

// WithdrawRequest is a request to take funds out
type WithdrawRequest struct {
	Amount     float64              `json:"amount"`
	Method     models.PaymentMethod `json:"method"`
	Confirm2FA bool                 `json:"confirm_2fa"`
}

// Wallet returns the current balance
func (s *WalletService) Wallet(ctx context.Context) (*models.Wallet, error) {
	return s.repo.GetWallet(ctx)
}

// toCents converts a positive, finite amount to whole cents
func toCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	cents := int64(math.Round(amount * 100))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// Deposit adds funds. Deposits complete immediately.
func (s *WalletService) Deposit(ctx context.Context, req DepositRequest) (*models.Transaction, error) {
	cents, err := toCents(req.Amount)
	if err != nil {
		return nil, err
	}
	if !req.Method.Valid() {
		return nil, ErrInvalidMethod
	}
	return s.record(ctx, models.TxDeposit, cents, req.Method, models.TxCompleted)
}

// Withdraw takes funds out. The amount is held immediately and the
// transaction stays pending until settled.
func (s *WalletService) Withdraw(ctx context.Context, req WithdrawRequest) (*models.Transaction, error) {
	cents, err := toCents(req.Amount)
	if err != nil {
		return nil, err
	}
	if !req.Method.Valid() {
		return nil, ErrInvalidMethod
	}
	if !req.Confirm2FA {
		return nil, Err2FARequired
	}

	w, err := s.repo.GetWallet(ctx)
	if err != nil {
		return nil, err
	}
	if cents > w.BalanceCents {
		return nil, ErrInsufficientBalance
	}
	return s.record(ctx, models.TxWithdraw, cents, req.Method, models.TxPending)
}

func (s *WalletService) record(ctx context.Context, typ models.TxType, cents int64, method models.PaymentMethod, st models.TxStatus) (*models.Transaction, error) {
	tx := models.Transaction{
		ID:          s.newID(),
		Type:        typ,
		AmountCents: cents,
		Amount:      float64(cents) / 100,
		Method:      method,
		Status:      st,
		CreatedAt:   s.clock.Now().UTC(),
	}

	delta := cents
	if typ == models.TxWithdraw {
		delta = -cents
	}
	if err := s.repo.RecordTransaction(ctx, tx, delta); err != nil {
		if err == repository.ErrInsufficientFunds {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}
	s.metrics.ObserveWalletTx(string(typ))
	s.log.Info("Wallet transaction recorded", "id", tx.ID, "type", typ, "amount_cents", cents, "status", st)

	s.publish(ctx, tx)
	return &tx, nil
}

// publish forwards the transaction to the event stream. Failures are
// logged; the transaction is already committed.
func (s *WalletService) publish(ctx context.Context, tx models.Transaction) {
	var balance int64
	if w, err := s.repo.GetWallet(ctx); err == nil {
		balance = w.BalanceCents
	}
	err := s.publisher.PublishWallet(ctx, events.WalletEvent{
		TransactionID: tx.ID,
		Type:          string(tx.Type),
		AmountCents:   tx.AmountCents,
		Method:        string(tx.Method),
		Status:        string(tx.Status),
		BalanceCents:  balance,
		TsUnixMs:      tx.CreatedAt.UnixMilli(),
	})
	if err != nil {
		s.metrics.ObserveEventPublish("error")
		s.log.Warn("Failed to publish wallet event", "id", tx.ID, "error", err)
		return
	}
	s.metrics.ObserveEventPublish("ok")
}

// Transactions returns the history matching f, newest first
func (s *WalletService) Transactions(ctx context.Context, f listing.TxFilter) ([]models.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Transactions(txs, f), nil
}

// Settle marks a pending transaction completed
func (s *WalletService) Settle(ctx context.Context, id string) error {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		if tx.ID != id {
			continue
		}
		if tx.Status == models.TxCompleted {
			return ErrTransactionSettled
		}
		return s.repo.UpdateTransactionStatus(ctx, id, models.TxCompleted)
	}
	return ErrTransactionNotFound
}

// SeedMock replaces the wallet with a demo balance and history
func (s *WalletService) SeedMock(ctx context.Context) (int, error) {
	now := s.clock.Now().UTC()
	mock := []struct {
		typ    models.TxType
		cents  int64
		method models.PaymentMethod
		status models.TxStatus
		ago    time.Duration
	}{
		{models.TxDeposit, 50000, models.MethodCard, models.TxCompleted, 9 * 24 * time.Hour},
		{models.TxDeposit, 100000, models.MethodBank, models.TxCompleted, 6 * 24 * time.Hour},
		{models.TxWithdraw, 20000, models.MethodBank, models.TxCompleted, 4 * 24 * time.Hour},
		{models.TxDeposit, 5050, models.MethodCard, models.TxCompleted, 2 * 24 * time.Hour},
		{models.TxWithdraw, 10000, models.MethodBank, models.TxPending, 5 * time.Hour},
	}

	if err := s.repo.ResetWallet(ctx); err != nil {
		return 0, err
	}
	var added int
	for _, m := range mock {
		delta := m.cents
		if m.typ == models.TxWithdraw {
			delta = -m.cents
		}
		tx := models.Transaction{
			ID: s.newID(), Type: m.typ, AmountCents: m.cents, Method: m.method, Status: m.status, CreatedAt: now.Add(-m.ago),
		}
		if err := s.repo.RecordTransaction(ctx, tx, delta); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
