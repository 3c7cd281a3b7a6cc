package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and migrates it
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// a second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS competitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			market TEXT NOT NULL,
			entry_fee REAL NOT NULL DEFAULT 0,
			fee_currency TEXT NOT NULL DEFAULT 'USDT',
			participants INTEGER NOT NULL DEFAULT 0,
			capacity INTEGER,
			starts_at DATETIME NOT NULL,
			ends_at DATETIME NOT NULL,
			prize_pool REAL NOT NULL DEFAULT 0,
			prize_currency TEXT NOT NULL DEFAULT 'USDT',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS prize_places (
			competition_id INTEGER NOT NULL,
			place INTEGER NOT NULL,
			amount REAL NOT NULL,
			PRIMARY KEY (competition_id, place),
			FOREIGN KEY (competition_id) REFERENCES competitions(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			balance_cents INTEGER NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'USDT'
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			amount_cents INTEGER NOT NULL,
			method TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			competition_id INTEGER UNIQUE,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'ongoing',
			participants INTEGER NOT NULL DEFAULT 0,
			prize REAL NOT NULL DEFAULT 0,
			rank INTEGER NOT NULL DEFAULT 0,
			cancel_reason TEXT,
			joined_at DATETIME NOT NULL,
			FOREIGN KEY (competition_id) REFERENCES competitions(id) ON DELETE SET NULL
		)`,
		`CREATE TABLE IF NOT EXISTS leaders (
			handle TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			badges TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_competitions_starts ON competitions(starts_at)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_created ON transactions(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_leaders_points ON leaders(points)`,
		`INSERT OR IGNORE INTO wallet (id, balance_cents, currency) VALUES (1, 0, 'USDT')`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	// base_url is set by the app on startup with the detected LAN address
	defaultSettings := map[string]string{
		"tick_interval_ms": "1000",
	}
	for key, value := range defaultSettings {
		if _, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return err
		}
	}
	return nil
}

// ==================== Settings ====================

// GetSetting returns a setting value or ErrNotFound
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting creates or replaces a setting
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

var validTables = map[string]bool{
	"competitions": true, "prize_places": true, "transactions": true, "entries": true, "leaders": true,
}

// ClearTable deletes every row of a whitelisted table. Clearing
// transactions also zeroes the wallet balance.
func (r *Repository) ClearTable(ctx context.Context, table string) error {
	if !validTables[table] {
		return ErrInvalidTable
	}
	if table == "transactions" {
		return r.ResetWallet(ctx)
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM "+table)
	return err
}
