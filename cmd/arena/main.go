package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abrezinsky/arena/internal/config"
)

// ANSI escape codes
const (
	clearLine = "\033[2K"
	moveUp    = "\033[%dA"
	reset     = "\033[0m"
	yellow    = "\033[33m"
	red       = "\033[31m"
	green     = "\033[32m"
	cyan      = "\033[36m"
	bold      = "\033[1m"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", red, reset, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to out
func newRootCmd(out io.Writer) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "arena",
		Short: "Arena - trading competition dashboard server",
		Long: `Arena serves the trading competition dashboard API: competitions with
live countdowns, tournament entries, the leaderboard and a demo wallet.

Configuration is read from arena.yaml, ARENA_* environment variables
(a .env file is loaded first) and flags, later sources winning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./arena.yaml)")

	load := func(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
		return loadConfig(cmd, configFile, bindings)
	}

	root.AddCommand(
		newServeCmd(load),
		newExportCmd(load),
		newSeedCmd(load),
		newStatusCmd(),
		newVersionCmd(),
	)
	return root
}

type configLoader func(cmd *cobra.Command, bindings map[string]string) (*config.Config, error)

// loadConfig binds each flag named in bindings to its config key, then loads
func loadConfig(cmd *cobra.Command, configFile string, bindings map[string]string) (*config.Config, error) {
	v := config.New()
	if err := bindFlags(v, cmd, bindings); err != nil {
		return nil, err
	}
	return config.Load(v, configFile)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, bindings map[string]string) error {
	for flag, key := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arena %s\n", version)
		},
	}
}
