package handlers

import (
	"time"

	"github.com/abrezinsky/arena/internal/status"
)

// CreatedResponse carries the id of a new resource
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// SettingsResponse is the response for settings
type SettingsResponse struct {
	BaseURL        string `json:"base_url"`
	TickIntervalMS int64  `json:"tick_interval_ms"`
}

// SeedResponse reports how many rows each seeder added
type SeedResponse struct {
	Competitions int `json:"competitions"`
	Transactions int `json:"transactions"`
	Tournaments  int `json:"tournaments"`
	Leaders      int `json:"leaders"`
}

// StatusResponse is the status engine evaluated for one instant
type StatusResponse struct {
	Status          status.Status `json:"status"`
	CountdownTarget time.Time     `json:"countdown_target"`
	Countdown       status.Parts  `json:"countdown"`
	Display         string        `json:"countdown_display"`
	Compact         string        `json:"compact_countdown"`
	Badge           status.Badge  `json:"duration_badge"`
	Joinable        bool          `json:"joinable"`
}

// I18nResponse is a full string table
type I18nResponse struct {
	Language string            `json:"language"`
	Dir      string            `json:"dir"`
	Strings  map[string]string `json:"strings"`
}

// WalletResponse adds the deposit presets to the balance
type WalletResponse struct {
	Balance        float64   `json:"balance"`
	Currency       string    `json:"currency"`
	Display        string    `json:"display"`
	DepositPresets []float64 `json:"deposit_presets"`
}
