package main

import (
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/internal/adapter"
	"github.com/aprasetyo/go-data-pengguna/internal/client"
	"github.com/aprasetyo/go-data-pengguna/internal/config"
	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
	"github.com/aprasetyo/go-data-pengguna/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("data-pengguna-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	services := service.NewClientServices(serverAdapter, *cfg, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
