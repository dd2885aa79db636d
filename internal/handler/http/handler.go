package http

import (
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
)

// Handler serves the /api/pengguna REST surface on top of the service
// layer.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{services: services, logger: logger}
}
