package store

import (
	"context"

	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

// Storages bundles every repository the server exposes to the service
// layer.
type Storages struct {
	Pengguna PenggunaRepository
}

// NewStorages opens the configured database, applies pending migrations,
// and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error migrating database schema")
		return nil, err
	}

	return &Storages{
		Pengguna: NewPenggunaRepository(db, log),
	}, nil
}
