package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"

	EmailMatchPattern = "pattern"
	EmailMatchExact   = "exact"
)

type AppConfig struct {
	Name      string
	Port      string
	LogLevel  string
	LogFormat string
}

type PostgresConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MigrationsPath  string
}

type LookupConfig struct {
	EmailMatch string
	StoresFile string
}

type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Lookup   LookupConfig
}

// NewConfig reads .env (if present) and the process environment.
func NewConfig() (*Config, error) {
	return Load(".env")
}

func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	cfg := &Config{}

	cfg.App.Name = getEnv("APP_NAME", "lookup-service")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.App.LogFormat = getEnv("LOG_FORMAT", "console")
	if cfg.App.LogFormat != "console" && cfg.App.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.App.LogFormat)
	}

	cfg.Postgres.Driver = getEnv("DB_DRIVER", DriverPgx)
	if cfg.Postgres.Driver != DriverPgx && cfg.Postgres.Driver != DriverPostgres {
		return nil, fmt.Errorf("DB_DRIVER must be %s or %s, got %q", DriverPgx, DriverPostgres, cfg.Postgres.Driver)
	}

	var err error
	if cfg.Postgres.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	cfg.Postgres.Port = getEnv("DB_PORT", "5432")
	if cfg.Postgres.User, err = requireEnv("DB_USER"); err != nil {
		return nil, err
	}
	cfg.Postgres.Password = os.Getenv("DB_PASSWORD")
	if cfg.Postgres.DBName, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Postgres.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Postgres.MigrationsPath = getEnv("MIGRATIONS_PATH", "migrations")

	if cfg.Postgres.MaxConns, err = getInt32("DB_MAX_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.Postgres.MinConns, err = getInt32("DB_MIN_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.Postgres.MinConns > cfg.Postgres.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS (%d) cannot exceed DB_MAX_CONNS (%d)", cfg.Postgres.MinConns, cfg.Postgres.MaxConns)
	}

	lifetime := getEnv("DB_MAX_CONN_LIFETIME", "30m")
	if cfg.Postgres.MaxConnLifetime, err = time.ParseDuration(lifetime); err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME %q: %w", lifetime, err)
	}

	cfg.Lookup.EmailMatch = strings.ToLower(getEnv("LOOKUP_EMAIL_MATCH", EmailMatchPattern))
	if cfg.Lookup.EmailMatch != EmailMatchPattern && cfg.Lookup.EmailMatch != EmailMatchExact {
		return nil, fmt.Errorf("LOOKUP_EMAIL_MATCH must be %s or %s, got %q", EmailMatchPattern, EmailMatchExact, cfg.Lookup.EmailMatch)
	}
	cfg.Lookup.StoresFile = os.Getenv("STORES_FILE")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func getInt32(key string, fallback int32) (int32, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return int32(n), nil
}
