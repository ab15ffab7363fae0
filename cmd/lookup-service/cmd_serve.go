package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vasiliy-maslov/retail-ops/internal/config"
	"github.com/vasiliy-maslov/retail-ops/internal/db"
	lookupHttp "github.com/vasiliy-maslov/retail-ops/internal/handler/http"
	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
	"github.com/vasiliy-maslov/retail-ops/internal/transport"
)

const shutdownTimeout = 15 * time.Second

// lookup-service serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	log.Info().Msg("Lookup service starting...")

	stores, err := lookup.LoadStoreRegistry(cfg.Lookup.StoresFile)
	if err != nil {
		return err
	}
	log.Info().Int("stores", stores.Len()).Msg("Store registry loaded")

	repo, closeDB, err := openRepository(cfg.Postgres, lookup.EmailMatch(cfg.Lookup.EmailMatch))
	if err != nil {
		return err
	}
	defer closeDB()

	lookupService := lookup.NewService(repo, stores)
	lookupHandler := lookupHttp.NewLookupHandler(lookupService)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      transport.NewRouter(lookupHandler),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// openRepository connects with the configured driver and returns the matching
// repository together with its cleanup func.
func openRepository(pg config.PostgresConfig, match lookup.EmailMatch) (lookup.Repository, func(), error) {
	switch pg.Driver {
	case config.DriverPostgres:
		dbConn, err := db.NewSQLX(pg)
		if err != nil {
			return nil, nil, err
		}
		return lookup.NewSQLXRepository(dbConn, match), func() {
			if err := dbConn.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close database connection")
			}
		}, nil
	default:
		pgConn, err := db.New(pg)
		if err != nil {
			return nil, nil, err
		}
		return lookup.NewRepository(pgConn.Pool, match), pgConn.Close, nil
	}
}
