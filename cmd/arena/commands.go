package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abrezinsky/arena/internal/app"
	"github.com/abrezinsky/arena/internal/auth"
	"github.com/abrezinsky/arena/internal/config"
	"github.com/abrezinsky/arena/internal/export"
	"github.com/abrezinsky/arena/internal/i18n"
	"github.com/abrezinsky/arena/internal/logger"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/services"
)

// openApp opens the configured database without starting the server
func openApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	return app.New(ctx, logger.NewWithLevel(logger.ParseLevel(cfg.Log.Level)), app.Options{
		DBPath:          cfg.Server.DBPath,
		PreferencesPath: cfg.Preferences.Path,
	}, auth.New(auth.GeneratePassword()))
}

func newExportCmd(load configLoader) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:       "export tournaments|transactions",
		Short:     "Export tournament entries or wallet transactions",
		Example:   "  arena export tournaments --format json --out ./exports\n  arena export transactions --out - > history.csv",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"tournaments", "transactions"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := load(cmd, map[string]string{"db": "server.db", "loglevel": "log.level"})
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var buf bytes.Buffer
			name, err := a.Export(cmd.Context(), args[0], f, &buf)
			if err != nil {
				return err
			}
			if outDir == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sWrote %s%s\n", green, path, reset)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or json")
	cmd.Flags().StringVar(&outDir, "out", ".", `Output directory, or "-" for stdout`)
	cmd.Flags().String("db", "arena.db", "SQLite database path")
	cmd.Flags().String("loglevel", "warn", "Log level: debug, info, warn, error")
	return cmd
}

func newSeedCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with demo competitions, wallet history, entries and leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, map[string]string{"db": "server.db", "loglevel": "log.level"})
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sSeeded %d rows into %s%s\n", green, n, cfg.Server.DBPath, reset)
			return nil
		},
	}
	cmd.Flags().String("db", "arena.db", "SQLite database path")
	cmd.Flags().String("loglevel", "warn", "Log level: debug, info, warn, error")
	return cmd
}

func newStatusCmd() *cobra.Command {
	var start, end, at, lang string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Print the status and countdown of a competition window",
		Example: "  arena status --start 2025-03-01T10:00:00Z --end 2025-03-08T10:00:00Z --at 2025-03-01T09:00:00Z",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := parseFlagTime("start", start)
			if err != nil {
				return err
			}
			endsAt, err := parseFlagTime("end", end)
			if err != nil {
				return err
			}
			now := time.Now()
			if at != "" {
				if now, err = parseFlagTime("at", at); err != nil {
					return err
				}
			}
			language, err := i18n.ParseLanguage(lang)
			if err != nil {
				return err
			}

			v := services.NewCompetitionView(models.Competition{StartsAt: startsAt, EndsAt: endsAt}, now, language)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status:    %s (%s)\n", v.Status, v.Display.StatusLabel)
			fmt.Fprintf(out, "countdown: %s (%s)\n", v.Display.Countdown, v.Display.Compact)
			fmt.Fprintf(out, "target:    %s\n", v.CountdownTarget.UTC().Format(time.RFC3339))
			fmt.Fprintf(out, "duration:  %d%s\n", v.Badge.Value, v.Badge.Unit)
			fmt.Fprintf(out, "joinable:  %t\n", v.Joinable)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time, RFC3339 (required)")
	cmd.Flags().StringVar(&end, "end", "", "End time, RFC3339 (required)")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate at this RFC3339 instant instead of now")
	cmd.Flags().StringVar(&lang, "lang", "en", "Label language: en or fa")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func parseFlagTime(name, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want RFC3339", name, value)
	}
	return t, nil
}
