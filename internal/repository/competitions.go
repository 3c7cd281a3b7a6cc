package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/abrezinsky/arena/internal/models"
)

const competitionColumns = `id, title, market, entry_fee, fee_currency, participants, capacity,
	starts_at, ends_at, prize_pool, prize_currency, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompetition(row rowScanner) (models.Competition, error) {
	var c models.Competition
	var market string
	var capacity sql.NullInt64
	err := row.Scan(&c.ID, &c.Title, &market, &c.EntryFee, &c.FeeCurrency, &c.Participants, &capacity,
		&c.StartsAt, &c.EndsAt, &c.PrizePool, &c.PrizeCurrency, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	c.Market = models.Market(market)
	if capacity.Valid {
		n := int(capacity.Int64)
		c.Capacity = &n
	}
	return c, nil
}

// ListCompetitions returns every competition, newest first, with prize breakdowns
func (r *Repository) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+competitionColumns+` FROM competitions ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Competition
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	places, err := r.prizePlaces(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].PrizeBreakdown = places[list[i].ID]
	}
	return list, nil
}

// GetCompetition returns one competition or ErrNotFound
func (r *Repository) GetCompetition(ctx context.Context, id int) (*models.Competition, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+competitionColumns+` FROM competitions WHERE id = ?`, id)
	c, err := scanCompetition(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT place, amount FROM prize_places WHERE competition_id = ? ORDER BY place`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.PrizePlace
		if err := rows.Scan(&p.Place, &p.Amount); err != nil {
			return nil, err
		}
		c.PrizeBreakdown = append(c.PrizeBreakdown, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) prizePlaces(ctx context.Context) (map[int][]models.PrizePlace, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT competition_id, place, amount FROM prize_places ORDER BY competition_id, place`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]models.PrizePlace)
	for rows.Next() {
		var id int
		var p models.PrizePlace
		if err := rows.Scan(&id, &p.Place, &p.Amount); err != nil {
			return nil, err
		}
		out[id] = append(out[id], p)
	}
	return out, rows.Err()
}

// CreateCompetition inserts a competition and its prize breakdown
func (r *Repository) CreateCompetition(ctx context.Context, c models.Competition) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var capacity any
	if c.Capacity != nil {
		capacity = *c.Capacity
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO competitions (title, market, entry_fee, fee_currency, participants, capacity,
			starts_at, ends_at, prize_pool, prize_currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, string(c.Market), c.EntryFee, c.FeeCurrency, c.Participants, capacity,
		c.StartsAt.UTC(), c.EndsAt.UTC(), c.PrizePool, c.PrizeCurrency, c.CreatedAt.UTC())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range c.PrizeBreakdown {
		if _, err := tx.ExecContext(ctx, `INSERT INTO prize_places (competition_id, place, amount) VALUES (?, ?, ?)`,
			id, p.Place, p.Amount); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

// DeleteCompetition removes a competition; entries keep their snapshot
func (r *Repository) DeleteCompetition(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM competitions WHERE id = ?`, id)
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

// CountCompetitions returns the number of stored competitions
func (r *Repository) CountCompetitions(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM competitions`).Scan(&n)
	return n, err
}

// JoinCompetition takes a seat in the competition and records the entry.
// It fails with ErrAlreadyJoined, ErrCompetitionFull or ErrNotFound.
func (r *Repository) JoinCompetition(ctx context.Context, competitionID int, joinedAt time.Time) (*models.TournamentEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries WHERE competition_id = ?`, competitionID).Scan(&existing); err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyJoined
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE competitions SET participants = participants + 1
		WHERE id = ? AND (capacity IS NULL OR participants < capacity)`, competitionID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	entry := models.TournamentEntry{CompetitionID: competitionID, Status: models.EntryOngoing, JoinedAt: joinedAt.UTC()}
	err = tx.QueryRowContext(ctx, `SELECT title, participants FROM competitions WHERE id = ?`, competitionID).
		Scan(&entry.Title, &entry.Participants)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrCompetitionFull
	}

	res, err = tx.ExecContext(ctx, `
		INSERT INTO entries (competition_id, title, status, participants, joined_at)
		VALUES (?, ?, ?, ?, ?)`,
		competitionID, entry.Title, string(entry.Status), entry.Participants, entry.JoinedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	entry.ID = int(id)
	return &entry, tx.Commit()
}
