package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vasiliy-maslov/retail-ops/internal/config"
)

var cfg *config.Config

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "lookup-service",
	Short:         "Customer order lookup service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := setupLogger(loaded.App); err != nil {
			return err
		}
		cfg = loaded
		log.Debug().Str("driver", cfg.Postgres.Driver).Str("email_match", cfg.Lookup.EmailMatch).Msg("Configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func setupLogger(app config.AppConfig) error {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", app.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	if app.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	log.Logger = log.With().Str("service", app.Name).Logger()
	return nil
}
