package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/arena/internal/app"
	"github.com/abrezinsky/arena/internal/auth"
	"github.com/abrezinsky/arena/internal/browser"
	"github.com/abrezinsky/arena/internal/logger"
)

func newServeCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket server",
		Example: `  arena serve                          # Port 8080 with arena.db
  arena serve --port 9000 --db /data/arena.db
  arena serve --adminpw secret123      # Fixed admin password
  ARENA_REDIS_ADDR=localhost:6379 arena serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, map[string]string{
				"port":       "server.port",
				"db":         "server.db",
				"adminpw":    "server.adminpw",
				"loglevel":   "log.level",
				"noanimate":  "server.noanimate",
				"nokeyboard": "server.nokeyboard",
				"prefs":      "preferences.path",
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			showBanner(out, !cfg.Server.NoAnimate)

			password := cfg.Server.AdminPassword
			if password == "" {
				password = auth.GeneratePassword()
			}

			appLog, err := logger.Build(logger.Options{
				Service: "arena",
				Env:     cfg.Log.Env,
				Level:   logger.ParseLevel(cfg.Log.Level),
			})
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer appLog.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, appLog, app.Options{
				DBPath:          cfg.Server.DBPath,
				PreferencesPath: cfg.Preferences.Path,
				RedisAddr:       cfg.Redis.Addr,
				RedisTTL:        cfg.Redis.TTL,
				KafkaBrokers:    cfg.Kafka.Brokers,
				KafkaTopic:      cfg.Kafka.Topic,
			}, auth.New(password))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer a.Close()

			appLog.Info("Admin password", "password", password)

			if cfg.Server.NoKeyboard {
				fmt.Fprintf(out, "\n%sKeyboard shortcuts disabled (use --nokeyboard=false to enable)%s\n\n", yellow, reset)
			} else {
				printKeyboardHelp(out)
				k := &keyboard{
					out:  out,
					log:  appLog,
					url:  fmt.Sprintf("http://localhost:%d/api/competitions", cfg.Server.Port),
					open: browser.Open,
					quit: stop,
				}
				// Stdin reads cannot be interrupted, so the listener is left
				// running when the server stops.
				go k.listen(ctx, os.Stdin)
			}

			if err := a.Run(ctx, cfg.Addr()); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("port", 8080, "HTTP server port")
	f.String("db", "arena.db", "SQLite database path")
	f.String("adminpw", "", "Admin password (auto-generated if not set)")
	f.String("loglevel", "info", "Log level: debug, info, warn, error")
	f.Bool("noanimate", false, "Show logo only, skip the chart animation")
	f.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	f.String("prefs", "arena-preferences.yaml", "Preferences file (language and theme)")
	return cmd
}
