package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// countRequests records every response code in the metrics registry
func (h *Handlers) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		h.Metrics.ObserveHTTP(r.Method, code)
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	if h.Metrics != nil {
		r.Use(h.countRequests)
	}

	r.Get("/healthz", h.handleHealth)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics.Handler())
	}

	// WebSocket connections are long-lived, so they sit outside the timeout.
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Competitions
		r.Get("/api/competitions", h.handleListCompetitions)
		r.Get("/api/competitions/{id}", h.handleGetCompetition)
		r.Post("/api/competitions/{id}/join", h.handleJoinCompetition)
		r.Get("/api/competitions/{id}/qr", h.handleCompetitionQR)

		// Wallet
		r.Get("/api/wallet", h.handleGetWallet)
		r.Post("/api/wallet/deposit", h.handleDeposit)
		r.Post("/api/wallet/withdraw", h.handleWithdraw)
		r.Get("/api/wallet/transactions", h.handleListTransactions)
		r.Get("/api/wallet/transactions/export", h.handleExportTransactions)

		// Tournaments & leaderboard
		r.Get("/api/tournaments", h.handleGetTournaments)
		r.Get("/api/tournaments/export", h.handleExportTournaments)
		r.Get("/api/leaderboard", h.handleGetLeaderboard)

		// Preferences, strings and the status engine
		r.Get("/api/preferences", h.handleGetPreferences)
		r.Put("/api/preferences", h.handleUpdatePreferences)
		r.Get("/api/i18n/{lang}", h.handleGetStrings)
		r.Get("/api/status", h.handleStatus)

		// Auth
		r.Post("/api/admin/login", h.handleLogin)
		r.Post("/api/admin/logout", h.handleLogout)

		// Admin API (protected)
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireAuthAPI)

			r.Post("/api/admin/competitions", h.handleCreateCompetition)
			r.Delete("/api/admin/competitions/{id}", h.handleDeleteCompetition)
			r.Put("/api/admin/tournaments/{id}/status", h.handleSetEntryStatus)
			r.Post("/api/admin/transactions/{id}/settle", h.handleSettleTransaction)
			r.Put("/api/admin/leaders", h.handleUpsertLeader)

			r.Get("/api/admin/settings", h.handleGetSettings)
			r.Put("/api/admin/settings", h.handleUpdateSettings)

			r.Post("/api/admin/reset-database", h.handleResetDatabase)
			r.Post("/api/admin/seed-mock-data", h.handleSeedMockData)
		})
	})

	return r
}
