// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/tui"
)

// App ties the terminal UI to the process lifecycle.
type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("no terminal ui provided")
	}
	return &App{tui: ui, logger: logger}, nil
}

// Run starts the UI and blocks until the user quits or the process
// receives a termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.tui.Run(ctx); err != nil {
		// a termination signal kills the program from the outside
		if !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
			return err
		}
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
