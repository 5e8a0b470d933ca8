package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/manas-solves/news-backend/internal/vcs"
)

var version = vcs.Version()

type envelope map[string]any

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	cfg := parseConfig()

	if cfg.migrationsPath != "" {
		if err := migrateUp(cfg.db.dsn, cfg.migrationsPath); err != nil {
			logger.Error("cannot apply migrations", "path", cfg.migrationsPath, "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied", "path", cfg.migrationsPath)
	}

	app := newApplication(cfg, logger)
	err := app.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func parseConfig() appConfig {
	var cfg appConfig

	flag.IntVar(&cfg.port, "port", envInt("PORT", 9090), "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 50, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")
	flag.DurationVar(&cfg.db.timeout, "db-timeout", 10*time.Second, "PostgreSQL operation timeout")

	flag.StringVar(&cfg.migrationsPath, "migrations", os.Getenv("MIGRATIONS_PATH"), "Apply migrations from this directory before serving")

	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated, all origins when empty)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	return cfg
}

// envInt reads an integer environment variable, returning fallback when it is
// unset or malformed.
func envInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}
