// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/tui"
)

const (
	cmdTUI    = "tui"
	cmdLogin  = "login"
	cmdWhoAmI = "whoami"
	cmdLogout = "logout"
	cmdStatus = "status"
)

const memoryTokensWarning = "warning: the token is kept in memory and will not outlive this command; " +
	"set -token-file or -local-dsn to keep it between commands"

const usage = `usage: session-client [flags] [command]

commands:
  tui               interactive session screen (default)
  login [username]  log in, prompting for the password
  whoami            show the current account
  logout            log out and forget the token
  status            show whether a token is stored`

type App struct {
	command []string

	authAdapter adapter.AuthAdapter
	tokens      store.TokenStore

	in     *bufio.Reader
	inFD   int
	out    io.Writer
	errOut io.Writer

	// memoryTokens is set when the token slot lives in process memory, so
	// a one-shot command cannot pass its token to the next one.
	memoryTokens bool

	closer func() error
	logger *logger.Logger
}

// NewApp builds the transport and the token slot described by cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create auth adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create token storage: %w", err)
	}

	a := newApp(cfg.Command, authAdapter, storages.TokenStore, os.Stdin, os.Stdout, os.Stderr, logger)
	a.inFD = int(os.Stdin.Fd())
	a.closer = storages.Close

	a.memoryTokens = cfg.Storage.DSN == "" && cfg.Storage.TokenFile == ""

	return a, nil
}

func newApp(command []string, authAdapter adapter.AuthAdapter, tokens store.TokenStore,
	in io.Reader, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		command:     command,
		authAdapter: authAdapter,
		tokens:      tokens,
		in:          bufio.NewReader(in),
		inFD:        -1,
		out:         out,
		errOut:      errOut,
		closer:      func() error { return nil },
		logger:      logger,
	}
}

func (a *App) commandName() string {
	if len(a.command) == 0 {
		return cmdTUI
	}
	return strings.ToLower(a.command[0])
}

// Run executes the command and releases the token storage afterwards. A
// failed session operation has already been reported through the view; its
// error is returned so the process can exit non-zero.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.closer(); err != nil {
			a.logger.Err(err).Msg("error closing token storage")
		}
	}()

	name := a.commandName()
	a.logger.Info().Str("command", name).Msg("running client command")

	if name == cmdTUI {
		view := tui.NewProgramView()
		session := service.NewClientSessionService(a.authAdapter, a.tokens, view, a.logger)
		return tui.New(session, view, a.logger).Run(ctx)
	}

	if a.memoryTokens {
		a.logger.Warn().Msg("token is kept in memory and will not outlive this command")
		_, _ = fmt.Fprintln(a.errOut, memoryTokensWarning)
	}

	session := service.NewClientSessionService(a.authAdapter, a.tokens, newConsoleView(a.out), a.logger)

	switch name {
	case cmdLogin:
		username, password, err := a.promptCredentials()
		if err != nil {
			_, _ = fmt.Fprintln(a.errOut, err)
			return err
		}
		return session.Login(ctx, username, password)
	case cmdWhoAmI:
		return session.WhoAmI(ctx)
	case cmdLogout:
		return session.Logout(ctx)
	case cmdStatus:
		session.Refresh(ctx)
		return nil
	default:
		_, _ = fmt.Fprintln(a.errOut, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, a.command[0])
	}
}
