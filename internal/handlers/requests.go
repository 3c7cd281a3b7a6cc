package handlers

import (
	"github.com/abrezinsky/arena/internal/models"
)

// LoginRequest is the admin login body
type LoginRequest struct {
	Password string `json:"password"`
}

// EntryStatusRequest represents an admin update to a tournament entry
type EntryStatusRequest struct {
	Status models.EntryStatus `json:"status"`
	Rank   int                `json:"rank"`
	Prize  float64            `json:"prize"`
	Reason string             `json:"reason"`
}

// SettingsUpdateRequest represents a request to update settings. Absent
// fields are left unchanged.
type SettingsUpdateRequest struct {
	BaseURL        *string `json:"base_url"`
	TickIntervalMS *int    `json:"tick_interval_ms"`
}

// DatabaseResetRequest represents a request to reset database tables
type DatabaseResetRequest struct {
	Tables []string `json:"tables"`
}

// SeedMockDataRequest selects what to seed. Empty means everything.
type SeedMockDataRequest struct {
	SeedType string `json:"seed_type"`
}
