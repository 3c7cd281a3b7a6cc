package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/arena/internal/format"
	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/status"
)

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]string{"status": "ok"})
}

func (h *Handlers) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Preferences.Get())
}

func (h *Handlers) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.Preferences
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	view, err := h.Preferences.Update(req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, view)
}

func (h *Handlers) handleGetStrings(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(chi.URLParam(r, "lang"))
	if err != nil {
		h.respondError(w, r, NotFound(err.Error()))
		return
	}
	respondOK(w, I18nResponse{
		Language: string(lang),
		Dir:      lang.Dir(),
		Strings:  i18n.Catalog(lang),
	})
}

func parseTimeQuery(r *http.Request, name string) (time.Time, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, BadRequest("Invalid " + name + " parameter, want RFC3339")
	}
	return t, true, nil
}

// handleStatus evaluates the status engine for arbitrary instants
func (h *Handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	start, ok, err := parseTimeQuery(r, "start")
	if err == nil && !ok {
		err = BadRequest("Missing start parameter")
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	end, ok, err := parseTimeQuery(r, "end")
	if err == nil && !ok {
		err = BadRequest("Missing end parameter")
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	at, ok, err := parseTimeQuery(r, "at")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if !ok {
		at = h.Clock.Now()
	}

	st := status.Derive(at, start, end)
	parts := st.Parts()
	respondOK(w, StatusResponse{
		Status:          st.Status,
		CountdownTarget: st.Target,
		Countdown:       parts,
		Display:         format.Countdown(parts),
		Compact:         format.CompactCountdown(st.Remaining, i18n.T(h.language(r), i18n.StatusStarted)),
		Badge:           status.DurationBadge(start, end),
		Joinable:        st.Joinable(),
	})
}
