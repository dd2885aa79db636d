// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package service

import (
	"context"
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/store"
	"github.com/aprasetyo/go-data-pengguna/internal/validators"
	"github.com/aprasetyo/go-data-pengguna/models"
)

type penggunaService struct {
	penggunaRepository store.PenggunaRepository
	validator          validators.Validator

	logger *logger.Logger
}

// NewPenggunaService constructs a PenggunaService over the given repository.
func NewPenggunaService(penggunaRepository store.PenggunaRepository, logger *logger.Logger) PenggunaService {
	return &penggunaService{
		penggunaRepository: penggunaRepository,
		validator:          validators.NewPenggunaValidator(),
		logger:             logger,
	}
}

// ListPage returns one fixed-size window over the records, ordered by id
// ascending. Page numbers below 1 are treated as the first page.
func (p *penggunaService) ListPage(ctx context.Context, page int) (models.Page, error) {
	return p.penggunaRepository.ListPage(ctx, page, models.DefaultPageSize)
}

// ListAll returns every record ordered by id ascending.
func (p *penggunaService) ListAll(ctx context.Context) ([]models.Pengguna, error) {
	return p.penggunaRepository.ListAll(ctx)
}

// Create validates and normalizes the record, then appends it. The returned
// record carries the id the database assigned.
func (p *penggunaService) Create(ctx context.Context, record models.Pengguna) (models.Pengguna, error) {
	if err := p.validator.Validate(ctx, record); err != nil {
		return models.Pengguna{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	record.Tanggal = models.DateOnly(record.Tanggal)

	return p.penggunaRepository.Insert(ctx, record)
}

// Update validates and normalizes the record, then overwrites the stored
// row with the same id.
func (p *penggunaService) Update(ctx context.Context, record models.Pengguna) error {
	fields := []string{
		validators.FieldID,
		validators.FieldNama,
		validators.FieldAlamat,
		validators.FieldTelepon,
		validators.FieldKategori,
		validators.FieldTipe,
		validators.FieldTanggal,
	}
	if err := p.validator.Validate(ctx, record, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	record.Tanggal = models.DateOnly(record.Tanggal)

	return p.penggunaRepository.Update(ctx, record)
}

// Delete removes the record with the given id.
func (p *penggunaService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}

	return p.penggunaRepository.Delete(ctx, id)
}
