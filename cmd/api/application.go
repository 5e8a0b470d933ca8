package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manas-solves/news-backend/internal/data"
	"github.com/manas-solves/news-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

//go:embed endpoints.json
var endpointsJSON []byte

type appConfig struct {
	port           int
	env            string
	db             dbConfig
	migrationsPath string
	cors           corsConfig
}

type dbConfig struct {
	dsn          string
	maxIdleTime  time.Duration
	maxOpenConns int
	timeout      time.Duration
}

type corsConfig struct {
	trustedOrigins []string
}

func (c appConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", c.port),
		slog.String("env", c.env),

		slog.Int("db-max-open-conns", c.db.maxOpenConns),
		slog.Duration("db-max-idle-time", c.db.maxIdleTime),
		slog.Duration("db-timeout", c.db.timeout),

		slog.Any("cors-trusted-origins", c.cors.trustedOrigins),
		slog.String("version", version),
	)
}

type application struct {
	config     appConfig
	logger     *slog.Logger
	db         *pgxpool.Pool
	modelStore data.ModelStore
	registry   *prometheus.Registry
	metrics    *metrics.HTTP
	endpoints  envelope
}

func newApplication(config appConfig, logger *slog.Logger) *application {
	var endpoints envelope
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		logger.Error("cannot decode endpoint documentation", "error", err)
		os.Exit(1)
	}

	db := openDB(config, logger)
	registry := metrics.NewRegistry()

	return &application{
		config:     config,
		logger:     logger,
		db:         db,
		modelStore: data.NewModelStore(db, config.db.timeout),
		registry:   registry,
		metrics:    metrics.NewHTTP(registry),
		endpoints:  endpoints,
	}
}

func openDB(config appConfig, logger *slog.Logger) *pgxpool.Pool {
	pgxConf, err := pgxpool.ParseConfig(config.db.dsn)
	if err != nil {
		logger.Error("cannot parse database dsn", "error", err)
		os.Exit(1)
	}
	pgxConf.MaxConnIdleTime = config.db.maxIdleTime
	pgxConf.MaxConns = int32(config.db.maxOpenConns)

	db, err := pgxpool.NewWithConfig(context.Background(), pgxConf)
	if err != nil {
		logger.Error("cannot connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.db.timeout)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		logger.Error("cannot ping database", "error", err)
		os.Exit(1)
	}

	return db
}
