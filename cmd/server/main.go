package main

import (
	"context"
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/handler"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/server"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
	"github.com/aprasetyo/go-data-pengguna/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("data-pengguna-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
