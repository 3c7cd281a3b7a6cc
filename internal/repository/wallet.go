package repository

import (
	"context"
	"database/sql"

	"github.com/abrezinsky/arena/internal/models"
)

// GetWallet returns the balance row
func (r *Repository) GetWallet(ctx context.Context) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.QueryRowContext(ctx, `SELECT balance_cents, currency FROM wallet WHERE id = 1`).Scan(&w.BalanceCents, &w.Currency)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	w.Balance = float64(w.BalanceCents) / 100
	return &w, nil
}

// SetBalance overwrites the balance, used when seeding
func (r *Repository) SetBalance(ctx context.Context, cents int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE wallet SET balance_cents = ? WHERE id = 1`, cents)
	return err
}

// ResetWallet deletes every transaction and zeroes the balance together,
// so the history always sums to the balance
func (r *Repository) ResetWallet(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE wallet SET balance_cents = 0 WHERE id = 1`); err != nil {
		return err
	}
	return tx.Commit()
}

// RecordTransaction stores tx and moves the balance by deltaCents in one
// database transaction. A delta that would make the balance negative fails
// with ErrInsufficientFunds and nothing is written.
func (r *Repository) RecordTransaction(ctx context.Context, t models.Transaction, deltaCents int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE wallet SET balance_cents = balance_cents + ?
		WHERE id = 1 AND balance_cents + ? >= 0`, deltaCents, deltaCents)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (id, type, amount_cents, method, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.AmountCents, string(t.Method), string(t.Status), t.CreatedAt.UTC()); err != nil {
		return err
	}
	return tx.Commit()
}

// ListTransactions returns every transaction, newest first
func (r *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, amount_cents, method, status, created_at
		FROM transactions ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var typ, method, st string
		if err := rows.Scan(&t.ID, &typ, &t.AmountCents, &method, &st, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Type = models.TxType(typ)
		t.Method = models.PaymentMethod(method)
		t.Status = models.TxStatus(st)
		t.Amount = float64(t.AmountCents) / 100
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// UpdateTransactionStatus changes the settlement state of a transaction
func (r *Repository) UpdateTransactionStatus(ctx context.Context, id string, status models.TxStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE transactions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
