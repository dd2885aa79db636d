package handler

import (
	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/handler/http"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
