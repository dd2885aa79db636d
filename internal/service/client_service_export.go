// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/export"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

type clientExportService struct {
	adapter adapter.ServerAdapter
	dir     string

	logger *logger.Logger
}

func NewClientExportService(serverAdapter adapter.ServerAdapter, cfg config.ClientExport, logger *logger.Logger) ClientExportService {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return &clientExportService{
		adapter: serverAdapter,
		dir:     dir,
		logger:  logger,
	}
}

func (c *clientExportService) ExportAllAsCSV(ctx context.Context) (string, error) {
	records, err := c.adapter.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("export fetch all records: %w", err)
	}

	data, err := export.CSV(records)
	if err != nil {
		return "", fmt.Errorf("export render csv: %w", err)
	}

	path := filepath.Join(c.dir, export.FileName)
	if err = os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("export write file: %w", err)
	}

	c.logger.Info().Str("path", path).Int("records", len(records)).Msg("csv export written")

	return path, nil
}
