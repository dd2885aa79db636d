package service

import (
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/store"
)

type Services struct {
	PenggunaService PenggunaService
}

func NewServices(storages store.Storages, logger *logger.Logger) *Services {
	return &Services{
		PenggunaService: NewPenggunaService(storages.Pengguna, logger),
	}
}
