package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/abrezinsky/arena/internal/models"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Repository{db: db}, mock
}

func TestListCompetitions_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "title", "market", "entry_fee", "fee_currency", "participants", "capacity",
		"starts_at", "ends_at", "prize_pool", "prize_currency", "created_at"}).
		AddRow("not-a-number", "T", "forex", 1.0, "USDT", 0, nil, time.Now(), time.Now(), 1.0, "USDT", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM competitions").WillReturnRows(rows)

	if _, err := repo.ListCompetitions(context.Background()); err == nil {
		t.Error("expected error from scan failure, got nil")
	}
}

func TestListCompetitions_PrizeQueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM competitions").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM prize_places").WillReturnError(errors.New("boom"))

	if _, err := repo.ListCompetitions(context.Background()); err == nil {
		t.Error("expected error from prize query, got nil")
	}
}

func TestListTransactions_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnError(errors.New("disk I/O error"))

	if _, err := repo.ListTransactions(context.Background()); err == nil {
		t.Error("expected query error, got nil")
	}
}

func TestListTransactions_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "type", "amount_cents", "method", "status", "created_at"}).
		AddRow("t1", "deposit", "lots", "card", "completed", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnRows(rows)

	if _, err := repo.ListTransactions(context.Background()); err == nil {
		t.Error("expected scan error, got nil")
	}
}

func TestRecordTransaction_BeginError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.RecordTransaction(context.Background(), models.Transaction{ID: "x"}, 100)
	if err == nil {
		t.Error("expected begin error, got nil")
	}
}

func TestRecordTransaction_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallet").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.RecordTransaction(context.Background(), models.Transaction{ID: "x", CreatedAt: time.Now()}, 100)
	if err == nil {
		t.Fatal("expected insert error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateCompetition_PrizeInsertError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO competitions").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO prize_places").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.CreateCompetition(context.Background(), models.Competition{
		Title:          "X",
		PrizeBreakdown: []models.PrizePlace{{Place: 1, Amount: 10}},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListLeaders_BadBadgeJSON(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"handle", "name", "points", "badges"}).
		AddRow("@a", "A", 10, "{not json")
	mock.ExpectQuery("SELECT (.+) FROM leaders").WillReturnRows(rows)

	if _, err := repo.ListLeaders(context.Background(), 10); err == nil {
		t.Error("expected JSON error, got nil")
	}
}

func TestListEntries_ScanError(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "competition_id", "title", "status", "participants", "prize", "rank", "cancel_reason", "joined_at"}).
		AddRow("bad", nil, "T", "ongoing", 1, 0.0, 0, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnRows(rows)

	if _, err := repo.ListEntries(context.Background()); err == nil {
		t.Error("expected scan error, got nil")
	}
}

func TestDeleteCompetition_RowsAffectedError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("DELETE FROM competitions").WillReturnResult(sqlmock.NewErrorResult(errors.New("no rows info")))

	if err := repo.DeleteCompetition(context.Background(), 1); err == nil {
		t.Error("expected rows affected error, got nil")
	}
}

func TestGetWallet_Missing(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM wallet").WillReturnRows(sqlmock.NewRows([]string{"balance_cents", "currency"}))

	if _, err := repo.GetWallet(context.Background()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
