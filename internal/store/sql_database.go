// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/migrations"
)

// DB wraps the raw connection together with the driver name, which decides
// the placeholder format and how assigned row ids are read back.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the database selected by cfg, configures the pool,
// and verifies the connection with a ping.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		driver: cfg.Driver,
		logger: log,
	}, nil
}

// Migrate brings the schema of the connected database up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isConstraintViolation reports whether err is a database-side integrity
// constraint rejection, for either supported driver.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
