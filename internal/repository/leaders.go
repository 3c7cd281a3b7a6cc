package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/abrezinsky/arena/internal/models"
)

// ListLeaders returns the top limit leaders by points; limit <= 0 returns all.
// Rank is assigned by position.
func (r *Repository) ListLeaders(ctx context.Context, limit int) ([]models.Leader, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT handle, name, points, badges FROM leaders
		ORDER BY points DESC, handle ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaders []models.Leader
	for rows.Next() {
		var l models.Leader
		var badges sql.NullString
		if err := rows.Scan(&l.Handle, &l.Name, &l.Points, &badges); err != nil {
			return nil, err
		}
		if badges.Valid && badges.String != "" {
			if err := json.Unmarshal([]byte(badges.String), &l.Badges); err != nil {
				return nil, err
			}
		}
		l.Rank = len(leaders) + 1
		leaders = append(leaders, l)
	}
	return leaders, rows.Err()
}

// UpsertLeader creates or replaces a leaderboard row keyed by handle
func (r *Repository) UpsertLeader(ctx context.Context, l models.Leader) error {
	var badges any
	if len(l.Badges) > 0 {
		b, err := json.Marshal(l.Badges)
		if err != nil {
			return err
		}
		badges = string(b)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leaders (handle, name, points, badges) VALUES (?, ?, ?, ?)
		ON CONFLICT(handle) DO UPDATE SET name = excluded.name, points = excluded.points, badges = excluded.badges`,
		l.Handle, l.Name, l.Points, badges)
	return err
}
