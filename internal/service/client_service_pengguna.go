// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package service

import (
	"context"
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/validators"
	"github.com/aprasetyo/go-data-pengguna/models"
)

type clientPenggunaService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientPenggunaService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPenggunaService {
	return &clientPenggunaService{
		adapter:   serverAdapter,
		validator: validators.NewPenggunaValidator(),
		logger:    logger,
	}
}

func (c *clientPenggunaService) ListPage(ctx context.Context, page int) (models.Page, error) {
	if page < 1 {
		page = 1
	}
	return c.adapter.List(ctx, page)
}

func (c *clientPenggunaService) Submit(ctx context.Context, draft models.Draft) (models.Pengguna, error) {
	record := draft.Pengguna()

	if err := c.validator.Validate(ctx, record); err != nil {
		return models.Pengguna{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	record.Tanggal = models.DateOnly(record.Tanggal)

	if draft.IsCreate() {
		created, err := c.adapter.Insert(ctx, record)
		if err != nil {
			return models.Pengguna{}, fmt.Errorf("submit create: %w", err)
		}
		c.logger.Debug().Int64("id", created.ID).Msg("record created on server")
		return created, nil
	}

	if err := c.adapter.Update(ctx, record); err != nil {
		return models.Pengguna{}, fmt.Errorf("submit update: %w", err)
	}
	c.logger.Debug().Int64("id", record.ID).Msg("record updated on server")

	return record, nil
}

func (c *clientPenggunaService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}

	if err := c.adapter.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	c.logger.Debug().Int64("id", id).Msg("record deleted on server")

	return nil
}
