// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the session client.
//
// The session service drives the screen through a [ProgramView], which turns
// every view call into a Bubble Tea message, so state only ever changes
// inside the program's update loop.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	session service.ClientSessionService
	view    *ProgramView

	logger *logger.Logger
}

// New builds the TUI around a session service that was constructed with
// view.
func New(session service.ClientSessionService, view *ProgramView, logger *logger.Logger) *TUI {
	return &TUI{session: session, view: view, logger: logger}
}

// Run shows the session screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newSessionModel(ctx, t.session), tea.WithAltScreen(), tea.WithContext(ctx))
	t.view.Attach(program)
	defer t.view.Detach()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}

	return nil
}
