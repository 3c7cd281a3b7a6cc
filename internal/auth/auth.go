// Package auth guards the admin API with a shared password and cookie sessions.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	CookieName    = "arena_session"
	SessionExpiry = 12 * time.Hour
)

// passwordWords are joined to build generated admin passwords
var passwordWords = []string{
	"bull", "bear", "candle", "margin", "spread",
	"pip", "ledger", "hedge", "rally", "breakout",
	"whale", "satoshi", "yield", "swing", "scalp",
	"pivot", "trend", "volume", "arena", "podium",
}

// Auth holds the admin password and the live sessions
type Auth struct {
	password string
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

// New creates an Auth that accepts password
func New(password string) *Auth {
	return &Auth{
		password: password,
		now:      time.Now,
		sessions: make(map[string]time.Time),
	}
}

// SetClock replaces the time source used for session expiry
func (a *Auth) SetClock(now func() time.Time) {
	a.now = now
}

// GeneratePassword returns three random words joined by dashes
func GeneratePassword() string {
	words := make([]string, 3)
	for i := range words {
		words[i] = passwordWords[randomIndex(len(passwordWords))]
	}
	return strings.Join(words, "-")
}

// Login checks password and starts a session
func (a *Auth) Login(password string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", false
	}

	token := newToken()
	a.mu.Lock()
	a.pruneLocked()
	a.sessions[token] = a.now().Add(SessionExpiry)
	a.mu.Unlock()
	return token, true
}

// Logout ends a session
func (a *Auth) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// Valid reports whether token names a live session
func (a *Auth) Valid(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	expiry, ok := a.sessions[token]
	if !ok {
		return false
	}
	if !a.now().Before(expiry) {
		delete(a.sessions, token)
		return false
	}
	return true
}

// Sessions returns the number of unexpired sessions
func (a *Auth) Sessions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pruneLocked()
	return len(a.sessions)
}

func (a *Auth) pruneLocked() {
	now := a.now()
	for token, expiry := range a.sessions {
		if !now.Before(expiry) {
			delete(a.sessions, token)
		}
	}
}

// Authenticated reports whether the request carries a valid session cookie
func (a *Auth) Authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return a.Valid(cookie.Value)
}

// RequireAuthAPI rejects requests without a session with 401
func (a *Auth) RequireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.Authenticated(r) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
	})
}

// SetSessionCookie stores token in the session cookie
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

func newToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func randomIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
