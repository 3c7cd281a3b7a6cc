package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/status"
)

// language picks the response language: a valid ?lang= wins, then the
// saved preference, then English.
func (h *Handlers) language(r *http.Request) i18n.Language {
	if lang, err := i18n.ParseLanguage(r.URL.Query().Get("lang")); err == nil {
		return lang
	}
	if h.Preferences != nil {
		return h.Preferences.Language()
	}
	return i18n.English
}

// parseFloatQuery returns nil when the parameter is absent. NaN and
// infinities are rejected.
func parseFloatQuery(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, BadRequest("Invalid " + name + " parameter")
	}
	return &v, nil
}

// listValues accepts both repeated parameters and comma-separated values
func listValues(q url.Values, name string) []string {
	var out []string
	for _, v := range q[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseCompetitionFilter(q url.Values) (listing.Filter, error) {
	f := listing.Filter{Query: q.Get("q")}
	var err error
	if f.MinFee, err = parseFloatQuery(q, "min_fee"); err != nil {
		return f, err
	}
	if f.MaxFee, err = parseFloatQuery(q, "max_fee"); err != nil {
		return f, err
	}
	if f.MinPrize, err = parseFloatQuery(q, "min_prize"); err != nil {
		return f, err
	}
	for _, m := range listValues(q, "market") {
		market := models.Market(m)
		if !market.Valid() {
			return f, BadRequest("Invalid market " + strconv.Quote(m))
		}
		f.Markets = append(f.Markets, market)
	}
	for _, s := range listValues(q, "status") {
		st, err := status.Parse(s)
		if err != nil {
			return f, BadRequest(err.Error())
		}
		f.Statuses = append(f.Statuses, st)
	}
	if f.Sort, err = listing.ParseSort(q.Get("sort")); err != nil {
		return f, BadRequest(err.Error())
	}
	return f, nil
}

func (h *Handlers) handleListCompetitions(w http.ResponseWriter, r *http.Request) {
	f, err := parseCompetitionFilter(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	views, err := h.Competitions.List(r.Context(), f, h.language(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, views)
}

func (h *Handlers) handleGetCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	view, err := h.Competitions.Get(r.Context(), id, h.language(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, view)
}

func (h *Handlers) handleJoinCompetition(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	entry, err := h.Competitions.Join(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondCreated(w, entry)
}

func (h *Handlers) handleCompetitionQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	png, err := h.Competitions.ShareQR(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
