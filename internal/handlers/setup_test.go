package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abrezinsky/arena/internal/auth"
	"github.com/abrezinsky/arena/internal/events"
	"github.com/abrezinsky/arena/internal/handlers"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/preferences"
	"github.com/abrezinsky/arena/internal/repository"
	"github.com/abrezinsky/arena/internal/repository/mock"
	"github.com/abrezinsky/arena/internal/services"
	"github.com/abrezinsky/arena/internal/testutil"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// testSetup holds a router wired to real services over an in-memory database
type testSetup struct {
	handlers   *handlers.Handlers
	router     http.Handler
	clock      *testutil.Clock
	settings   *services.SettingsService
	authCookie *http.Cookie
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()
	return newSetup(t, testutil.NewTestRepository(t))
}

func newTestSetupWithMockRepo(t *testing.T) (*testSetup, *mock.Repository) {
	t.Helper()
	mockRepo := mock.NewRepository(testutil.NewTestRepository(t))
	return newSetup(t, mockRepo), mockRepo
}

func newSetup(t *testing.T, repo repository.FullRepository) *testSetup {
	t.Helper()

	log := logger.New()
	clock := testutil.NewClock(epoch)
	store, err := preferences.Load("")
	if err != nil {
		t.Fatalf("failed to load preferences: %v", err)
	}

	settings := services.NewSettingsService(log, repo)
	h := handlers.NewForTesting(handlers.Services{
		Competitions: services.NewCompetitionService(log, repo, clock, settings),
		Wallet:       services.NewWalletService(log, repo, clock, &events.Memory{}),
		Tournaments:  services.NewTournamentService(log, repo, clock),
		Leaderboard:  services.NewLeaderboardService(log, repo, nil),
		Preferences:  services.NewPreferencesService(log, store),
		Settings:     settings,
	})
	h.Clock = clock

	token, _ := h.Auth.Login("test-password")
	return &testSetup{
		handlers:   h,
		router:     h.Router(),
		clock:      clock,
		settings:   settings,
		authCookie: &http.Cookie{Name: auth.CookieName, Value: token},
	}
}

// do sends a request through the router. A non-empty body is sent as JSON.
func (s *testSetup) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// doAdmin is do with the admin session cookie attached
func (s *testSetup) doAdmin(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(s.authCookie)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
