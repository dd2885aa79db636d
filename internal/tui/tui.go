// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

// Package tui implements the terminal user interface of the client: a
// single-page layout with the create/edit form on top and the paged
// record listing below it, plus a delete confirmation overlay and a
// status line shared by all operations.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}
	return &TUI{services: services, logger: logger}, nil
}

// Run drives the main loop until the user quits or the program fails.
// A deliberate quit is not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	t.logger.Info().Msg("tui closed")
	return nil
}
