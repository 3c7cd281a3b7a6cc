package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/abrezinsky/arena/internal/export"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/services"
)

func (h *Handlers) handleGetTournaments(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Tournaments.Grouped(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, groups)
}

func (h *Handlers) handleExportTournaments(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Tournaments.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.sendExport(w, r, "tournaments", func(out io.Writer, f export.Format) error {
		return export.Tournaments(out, f, entries)
	})
}

func (h *Handlers) handleSetEntryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req EntryStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	err = h.Tournaments.SetResult(r.Context(), id, services.EntryResult{
		Status: req.Status,
		Rank:   req.Rank,
		Prize:  req.Prize,
		Reason: req.Reason,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondSuccess(w, "Tournament entry updated")
}

func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondError(w, r, BadRequest("Invalid limit parameter"))
			return
		}
		limit = n
	}
	board, err := h.Leaderboard.Leaderboard(r.Context(), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, board)
}

func (h *Handlers) handleUpsertLeader(w http.ResponseWriter, r *http.Request) {
	var req models.Leader
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Leaderboard.Upsert(r.Context(), req); err != nil {
		h.respondError(w, r, err)
		return
	}
	respondSuccess(w, "Leader saved")
}
