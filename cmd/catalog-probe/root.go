package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/config"
	"github.com/amorporfilmes/filmes-series/internal/logging"
)

const appName = "catalog-probe"

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

type probeFlags struct {
	source     string
	configPath string
	timeout    time.Duration
	asJSON     bool
	logLevel   string
}

// probeEnv is what every subcommand needs after setup
type probeEnv struct {
	flags    *probeFlags
	cfg      *config.Config
	services catalog.Services
}

func newRootCmd() *cobra.Command {
	flags := &probeFlags{}
	env := &probeEnv{flags: flags}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Run the home screen aggregation without a UI",
		Long:          `catalog-probe loads the same categories as the home screen, concurrently, and prints what arrived.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.source, "source", "s", "", "Catalog source (mock, tmdb); defaults to catalog.source")
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 30*time.Second, "Give up waiting after this long")
	rootCmd.PersistentFlags().BoolVar(&flags.asJSON, "json", false, "Print the report as JSON")
	rootCmd.PersistentFlags().StringVarP(&flags.logLevel, "logLevel", "l", "", "Log level (debug, info, warn, error)")

	setup := func(cmd *cobra.Command, _ []string) error {
		return env.setup(cmd)
	}

	homeCmd := &cobra.Command{
		Use:     "home",
		Short:   "Load every home category",
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHome(cmd, env)
		},
	}
	posterCmd := &cobra.Command{
		Use:     "poster",
		Short:   "Load the banner movies",
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPoster(cmd, env)
		},
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	}

	rootCmd.AddCommand(homeCmd, posterCmd, versionCmd)
	return rootCmd
}

func (e *probeEnv) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Logging.Level
	if e.flags.logLevel != "" {
		level = e.flags.logLevel
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format, Output: cmd.ErrOrStderr()})

	source := e.flags.source
	if source == "" {
		source = cfg.Catalog.Source
	}
	services, err := config.BuildServices(cfg, source)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.services = services
	return nil
}
