//go:build windows

// Command winshell is a diagnostic CLI for the winshell library: it lists
// windows and monitors, reads and writes window titles, and waits on global
// hotkeys.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpdg/winshell"
)

// config is populated from WINSHELL_* environment variables.
type config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DPIAware bool   `env:"DPI_AWARE" envDefault:"true"`
}

var (
	cfg config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "winshell",
	Short:         "Inspect and manipulate windows, monitors, and hotkeys",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "WINSHELL_"}); err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid WINSHELL_LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		if cfg.DPIAware {
			if err := winshell.EnablePerMonitorDPI(); err != nil {
				// Coordinates will be virtualized on scaled monitors; still usable.
				log.Warn().Err(err).Msg("per-monitor DPI awareness unavailable")
			}
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
