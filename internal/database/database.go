// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package database opens the document store selected by configuration and
// prepares it for use: Mongo indexes, PostgreSQL migrations run with goose,
// and the development bootstrap data.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"contenthub/internal/config"
	"contenthub/internal/docstore"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Open connects to the store named by cfg.StoreURI and returns a gateway
// the caller must close. Mongo gets its lookup indexes and PostgreSQL its
// schema before Open returns.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (docstore.Conn, error) {
	driver, err := cfg.Driver()
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("driver", driver), zap.String("uri", cfg.RedactedStoreURI()))

	switch driver {
	case config.DriverMongo:
		m, err := docstore.ConnectMongo(ctx, cfg.StoreURI, cfg.StoreDB, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}
		if err := m.EnsureIndexes(ctx); err != nil {
			_ = m.Close(context.WithoutCancel(ctx))
			return nil, err
		}
		log.Info("document store connected", zap.String("database", cfg.StoreDB))
		return m, nil

	case config.DriverPostgres:
		p, err := docstore.ConnectPostgres(ctx, cfg.StoreURI, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}
		if err := Migrate(p.SQL(), log); err != nil {
			_ = p.Close(ctx)
			return nil, err
		}
		log.Info("document store connected")
		return p, nil

	case config.DriverMemory:
		log.Warn("using the in-memory document store; data is lost on exit")
		return docstore.NewMemory(), nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", driver)
}

// Migrate runs all pending goose migrations from the embedded SQL files.
// Migrations are embedded at compile time so no external files are needed
// at runtime.
func Migrate(db *sql.DB, log *zap.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log.Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return &docstore.StoreError{Op: "migrate", Err: err}
	}

	log.Info("database migrations applied")
	return nil
}

// gooseLogger routes goose output through zap.
type gooseLogger struct{ s *zap.SugaredLogger }

func (l gooseLogger) Printf(format string, v ...any) { l.s.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.s.Fatalf(format, v...) }
