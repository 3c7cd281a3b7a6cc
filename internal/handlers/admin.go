package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/abrezinsky/arena/internal/services"
)

// ==================== Competitions ====================

func (h *Handlers) handleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req services.CompetitionInput
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	id, err := h.Competitions.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondCreated(w, CreatedResponse{ID: id})
}

func (h *Handlers) handleDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Competitions.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	respondDeleted(w)
}

// ==================== Settings ====================

func (h *Handlers) settingsResponse(r *http.Request) (*SettingsResponse, error) {
	baseURL, err := h.Settings.GetBaseURL(r.Context())
	if err != nil {
		return nil, err
	}
	tick, err := h.Settings.TickInterval(r.Context())
	if err != nil {
		return nil, err
	}
	return &SettingsResponse{BaseURL: baseURL, TickIntervalMS: tick.Milliseconds()}, nil
}

func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsResponse(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, resp)
}

func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	ctx := r.Context()

	if req.TickIntervalMS != nil {
		if err := h.Settings.SetTickInterval(ctx, time.Duration(*req.TickIntervalMS)*time.Millisecond); err != nil {
			h.respondError(w, r, err)
			return
		}
	}
	if req.BaseURL != nil {
		if err := h.Settings.SetBaseURL(ctx, strings.TrimSpace(*req.BaseURL)); err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	resp, err := h.settingsResponse(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, resp)
}

// ==================== Database Management ====================

func (h *Handlers) handleResetDatabase(w http.ResponseWriter, r *http.Request) {
	var req DatabaseResetRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.Settings.ResetTables(r.Context(), req.Tables)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, result)
}

func (h *Handlers) handleSeedMockData(w http.ResponseWriter, r *http.Request) {
	var req SeedMockDataRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	ctx := r.Context()
	var resp SeedResponse
	var err error

	switch req.SeedType {
	case "", "all":
		if resp.Competitions, err = h.Competitions.SeedMock(ctx); err != nil {
			break
		}
		if resp.Transactions, err = h.Wallet.SeedMock(ctx); err != nil {
			break
		}
		if resp.Tournaments, err = h.Tournaments.SeedMock(ctx); err != nil {
			break
		}
		resp.Leaders, err = h.Leaderboard.SeedMock(ctx)
	case "competitions":
		resp.Competitions, err = h.Competitions.SeedMock(ctx)
	case "wallet":
		resp.Transactions, err = h.Wallet.SeedMock(ctx)
	case "tournaments":
		resp.Tournaments, err = h.Tournaments.SeedMock(ctx)
	case "leaders":
		resp.Leaders, err = h.Leaderboard.SeedMock(ctx)
	default:
		h.respondError(w, r, BadRequest(fmt.Sprintf("Invalid seed type %q", req.SeedType)))
		return
	}

	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, resp)
}
