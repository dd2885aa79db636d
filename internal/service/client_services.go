package service

import (
	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

type ClientServices struct {
	PenggunaService ClientPenggunaService
	ExportService   ClientExportService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PenggunaService: NewClientPenggunaService(serverAdapter, logger),
		ExportService:   NewClientExportService(serverAdapter, cfg.Export, logger),
	}
}
