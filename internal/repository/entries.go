package repository

import (
	"context"
	"database/sql"

	"github.com/abrezinsky/arena/internal/models"
)

const entryColumns = `id, competition_id, title, status, participants, prize, rank, cancel_reason, joined_at`

func scanEntry(row rowScanner) (models.TournamentEntry, error) {
	var e models.TournamentEntry
	var competitionID sql.NullInt64
	var st string
	var reason sql.NullString
	if err := row.Scan(&e.ID, &competitionID, &e.Title, &st, &e.Participants, &e.Prize, &e.Rank, &reason, &e.JoinedAt); err != nil {
		return e, err
	}
	e.CompetitionID = int(competitionID.Int64)
	e.Status = models.EntryStatus(st)
	e.CancelReason = reason.String
	return e, nil
}

// ListEntries returns the user's tournament entries, most recent first
func (r *Repository) ListEntries(ctx context.Context) ([]models.TournamentEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY joined_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.TournamentEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetEntry returns one entry or ErrNotFound
func (r *Repository) GetEntry(ctx context.Context, id int) (*models.TournamentEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntry inserts an entry snapshot without touching the competition
func (r *Repository) CreateEntry(ctx context.Context, e models.TournamentEntry) (int64, error) {
	var competitionID any
	if e.CompetitionID != 0 {
		competitionID = e.CompetitionID
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (competition_id, title, status, participants, prize, rank, cancel_reason, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		competitionID, e.Title, string(e.Status), e.Participants, e.Prize, e.Rank, nullString(e.CancelReason), e.JoinedAt.UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateEntryResult sets the status, final rank, prize and cancel reason
func (r *Repository) UpdateEntryResult(ctx context.Context, id int, status models.EntryStatus, rank int, prize float64, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE entries SET status = ?, rank = ?, prize = ?, cancel_reason = ? WHERE id = ?`,
		string(status), rank, prize, nullString(reason), id)
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
