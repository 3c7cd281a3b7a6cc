package handlers

import (
	"net/http"

	"github.com/abrezinsky/arena/internal/auth"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/services"
)

// LiveHub serves websocket connections
type LiveHub interface {
	ServeWs(w http.ResponseWriter, r *http.Request)
}

// Services groups the service dependencies of the handlers
type Services struct {
	Competitions services.CompetitionServicer
	Wallet       services.WalletServicer
	Tournaments  services.TournamentServicer
	Leaderboard  services.LeaderboardServicer
	Preferences  services.PreferencesServicer
	Settings     services.SettingsServicer
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Services
	Auth    *auth.Auth
	Hub     LiveHub
	Metrics *metrics.Metrics
	Clock   services.Clock
	Log     logger.Logger
}

// New creates a new Handlers instance with all dependencies. hub and m may
// be nil, which leaves /ws and /metrics unrouted.
func New(svc Services, adminAuth *auth.Auth, hub LiveHub, m *metrics.Metrics, log logger.Logger) *Handlers {
	return &Handlers{
		Services: svc,
		Auth:     adminAuth,
		Hub:      hub,
		Metrics:  m,
		Clock:    services.SystemClock{},
		Log:      log,
	}
}

// NewForTesting creates a Handlers instance with a known admin password
// ("test-password") and no hub or metrics
func NewForTesting(svc Services) *Handlers {
	return New(svc, auth.New("test-password"), nil, nil, logger.New())
}
