package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/abrezinsky/arena/internal/auth"
	"github.com/abrezinsky/arena/internal/cache"
	"github.com/abrezinsky/arena/internal/events"
	"github.com/abrezinsky/arena/internal/export"
	"github.com/abrezinsky/arena/internal/handlers"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/metrics"
	"github.com/abrezinsky/arena/internal/preferences"
	"github.com/abrezinsky/arena/internal/repository"
	"github.com/abrezinsky/arena/internal/services"
	"github.com/abrezinsky/arena/internal/websocket"
)

const shutdownTimeout = 5 * time.Second

// Options selects the storage and the optional Redis and Kafka backends.
// Empty RedisAddr or KafkaBrokers disables that backend.
type Options struct {
	DBPath          string
	PreferencesPath string
	RedisAddr       string
	RedisTTL        time.Duration
	KafkaBrokers    string
	KafkaTopic      string
}

// App holds all application dependencies
type App struct {
	log      logger.Logger
	repo     *repository.Repository
	metrics  *metrics.Metrics
	hub      *websocket.Hub
	handlers *handlers.Handlers

	competitions *services.CompetitionService
	wallet       *services.WalletService
	tournaments  *services.TournamentService
	settings     *services.SettingsService

	closers []io.Closer
	now     func() time.Time
}

// New creates and wires a new application instance
func New(ctx context.Context, log logger.Logger, opts Options, adminAuth *auth.Auth) (*App, error) {
	repo, err := repository.New(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := preferences.Load(opts.PreferencesPath)
	if err != nil {
		repo.Close()
		return nil, err
	}

	a := &App{log: log, repo: repo, metrics: metrics.New(), now: time.Now}

	leaderCache := a.connectCache(ctx, opts)
	publisher := a.connectEvents(opts)

	clock := services.SystemClock{}
	a.settings = services.NewSettingsService(log, repo)
	a.settings.SetLeaderboardCache(leaderCache)
	a.competitions = services.NewCompetitionService(log, repo, clock, a.settings)
	a.competitions.SetMetrics(a.metrics)
	a.wallet = services.NewWalletService(log, repo, clock, publisher)
	a.wallet.SetMetrics(a.metrics)
	a.tournaments = services.NewTournamentService(log, repo, clock)
	leaderboard := services.NewLeaderboardService(log, repo, leaderCache)
	leaderboard.SetMetrics(a.metrics)
	prefs := services.NewPreferencesService(log, store)

	a.hub = websocket.New(log, a.competitions, a.settings, prefs)
	a.hub.SetMetrics(a.metrics)
	a.competitions.SetBroadcaster(a.hub)

	a.handlers = handlers.New(handlers.Services{
		Competitions: a.competitions,
		Wallet:       a.wallet,
		Tournaments:  a.tournaments,
		Leaderboard:  leaderboard,
		Preferences:  prefs,
		Settings:     a.settings,
	}, adminAuth, a.hub, a.metrics, log)

	return a, nil
}

// connectCache returns the Redis leaderboard cache, or a no-op cache when
// Redis is not configured or unreachable
func (a *App) connectCache(ctx context.Context, opts Options) cache.LeaderboardCache {
	if opts.RedisAddr == "" {
		return cache.Noop{}
	}
	client, err := cache.Connect(ctx, opts.RedisAddr)
	if err != nil {
		a.log.Warn("Redis unavailable, leaderboard cache disabled", "addr", opts.RedisAddr, "error", err)
		return cache.Noop{}
	}
	a.closers = append(a.closers, client)
	a.log.Info("Leaderboard cache enabled", "addr", opts.RedisAddr, "ttl", opts.RedisTTL)
	return cache.NewRedis(client, opts.RedisTTL)
}

// connectEvents returns the Kafka wallet publisher, or a no-op publisher
func (a *App) connectEvents(opts Options) events.Publisher {
	if opts.KafkaBrokers == "" {
		return events.Noop{}
	}
	k := events.NewKafka(opts.KafkaBrokers, opts.KafkaTopic)
	a.closers = append(a.closers, k)
	a.log.Info("Wallet events enabled", "brokers", opts.KafkaBrokers, "topic", opts.KafkaTopic)
	return k
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close releases the database and backend connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	errs = append(errs, a.repo.Close())
	return errors.Join(errs...)
}

// Run serves HTTP on addr together with the live hub and its ticker until
// ctx is canceled or one of them fails
func (a *App) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	port := ln.Addr().(*net.TCPAddr).Port
	baseURL := fmt.Sprintf("http://%s:%d", preferredIP(systemInterfaces{}), port)
	a.setDefaultBaseURL(ctx, baseURL)

	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Admin API", "url", baseURL+"/api/admin")

	srv := &http.Server{Handler: a.Router(), ReadHeaderTimeout: 10 * time.Second}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		a.hub.RunTicker(gctx)
		return nil
	})
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.log.Info("Server stopped")
	return err
}

// setDefaultBaseURL stores baseURL as the share-link base when none is set
// or the stored one points at localhost, which phones cannot reach
func (a *App) setDefaultBaseURL(ctx context.Context, baseURL string) {
	existing, err := a.settings.GetBaseURL(ctx)
	if err != nil {
		a.log.Warn("Failed to read base_url", "error", err)
		return
	}
	if existing != "" && !strings.Contains(existing, "localhost") {
		return
	}
	if err := a.settings.SetBaseURL(ctx, baseURL); err != nil {
		a.log.Warn("Failed to set default base_url", "error", err)
		return
	}
	a.log.Info("Default base URL set", "url", baseURL)
}

// Export writes the tournament entries or wallet transactions to w and
// returns the suggested file name
func (a *App) Export(ctx context.Context, kind string, f export.Format, w io.Writer) (string, error) {
	switch kind {
	case "tournaments":
		entries, err := a.tournaments.List(ctx)
		if err != nil {
			return "", err
		}
		return export.Filename(kind, f, a.now()), export.Tournaments(w, f, entries)
	case "transactions":
		txs, err := a.wallet.Transactions(ctx, listing.TxFilter{})
		if err != nil {
			return "", err
		}
		return export.Filename(kind, f, a.now()), export.Transactions(w, f, txs)
	default:
		return "", fmt.Errorf("unknown export %q, want tournaments or transactions", kind)
	}
}

// Seed fills every table with demo data and returns the number of rows added
func (a *App) Seed(ctx context.Context) (int, error) {
	var total int
	for _, seed := range []func(context.Context) (int, error){
		a.competitions.SeedMock,
		a.wallet.SeedMock,
		a.tournaments.SeedMock,
		a.handlers.Leaderboard.SeedMock,
	} {
		n, err := seed(ctx)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// netInterface is the part of net.Interface used to pick an address
type netInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

type interfaceLister interface {
	Interfaces() ([]netInterface, error)
}

type systemInterface struct{ iface net.Interface }

func (s systemInterface) Flags() net.Flags           { return s.iface.Flags }
func (s systemInterface) Addrs() ([]net.Addr, error) { return s.iface.Addrs() }

type systemInterfaces struct{}

func (systemInterfaces) Interfaces() ([]netInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]netInterface, len(ifaces))
	for i, iface := range ifaces {
		out[i] = systemInterface{iface}
	}
	return out, nil
}

// preferredIP returns the IPv4 address other devices on the LAN are most
// likely to reach: a private address if there is one, then any other
// non-loopback address, then "localhost"
func preferredIP(lister interfaceLister) string {
	ifaces, err := lister.Interfaces()
	if err != nil {
		return "localhost"
	}

	var fallback string
	for _, iface := range ifaces {
		if iface.Flags()&net.FlagUp == 0 || iface.Flags()&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ip := addrIP(addr).To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if ip.IsPrivate() {
				return ip.String()
			}
			if fallback == "" {
				fallback = ip.String()
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "localhost"
}

func addrIP(addr net.Addr) net.IP {
	switch v := addr.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	}
	return nil
}
