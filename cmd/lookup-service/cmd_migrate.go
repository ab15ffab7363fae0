package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vasiliy-maslov/retail-ops/internal/db"
)

// lookup-service migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Str("path", cfg.Postgres.MigrationsPath).Msg("Applying migrations")
		return db.ApplyMigrations(cfg.Postgres)
	},
}
