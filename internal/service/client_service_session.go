// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	redactPrefixLen = 8
	redactSuffixLen = 6
	redactEllipsis  = "…"
)

type clientSessionService struct {
	adapter adapter.AuthAdapter
	tokens  store.TokenStore
	view    View

	logger *logger.Logger
}

// NewClientSessionService builds the session client on top of an auth
// adapter, the token slot and a view.
func NewClientSessionService(authAdapter adapter.AuthAdapter, tokens store.TokenStore, view View, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter: authAdapter,
		tokens:  tokens,
		view:    view,
		logger:  logger,
	}
}

// Login submits the credentials and stores the returned token. The username
// is trimmed, the password is sent as typed. The view is refreshed whatever
// the outcome.
func (s *clientSessionService) Login(ctx context.Context, username, password string) error {
	defer s.Refresh(ctx)

	username = strings.TrimSpace(username)

	resp, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		s.logger.Err(err).Str("username", username).Msg("login failed")
		s.showFailure(err, app.MsgLoginFailed)
		return err
	}

	if err = s.tokens.Set(ctx, resp.AccessToken); err != nil {
		s.logger.Err(err).Msg("error saving access token")
		err = fmt.Errorf("save token: %w", err)
		s.view.ShowStatus(models.StatusError, err.Error())
		return err
	}

	s.logger.Info().Str("username", username).Msg("logged in")
	s.view.ShowStatus(models.StatusOK, app.MsgLoggedIn)
	return nil
}

// Token returns the stored token or "" when there is none. Store failures
// are logged and reported as no token.
func (s *clientSessionService) Token(ctx context.Context) string {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error reading access token")
		return ""
	}
	return token
}

// WhoAmI calls /me with the stored token, even an empty one, and shows the
// response body verbatim in the output region, error bodies included. The
// status line is left untouched.
func (s *clientSessionService) WhoAmI(ctx context.Context) error {
	body, err := s.adapter.Me(ctx, s.Token(ctx))
	if err != nil {
		s.logger.Err(err).Msg("whoami failed")

		var appErr *adapter.ApplicationError
		if errors.As(err, &appErr) {
			s.view.ShowOutput(appErr.RawBody)
		} else {
			s.view.ShowOutput(err.Error())
		}
		return err
	}

	s.view.ShowOutput(body)
	return nil
}

// Logout revokes the token on the server. The local token is removed before
// the server's answer is looked at, so a failed logout still leaves the
// client logged out.
func (s *clientSessionService) Logout(ctx context.Context) error {
	defer s.Refresh(ctx)

	_, err := s.adapter.Logout(ctx, s.Token(ctx))

	removeErr := s.tokens.Remove(ctx)
	if removeErr != nil {
		s.logger.Err(removeErr).Msg("error removing access token")
	}

	if err != nil {
		s.logger.Err(err).Msg("logout failed")
		s.showFailure(err, app.MsgLogoutFailed)
		return err
	}

	if removeErr != nil {
		removeErr = fmt.Errorf("remove token: %w", removeErr)
		s.view.ShowStatus(models.StatusError, removeErr.Error())
		return removeErr
	}

	s.logger.Info().Msg("logged out")
	s.view.ShowStatus(models.StatusOK, app.MsgLoggedOut)
	return nil
}

// Refresh syncs the view with the stored token. Calling it repeatedly
// without a change in between renders the same state.
func (s *clientSessionService) Refresh(ctx context.Context) {
	token := s.Token(ctx)

	s.view.SetAuthenticated(token != "")
	if token == "" {
		s.view.RenderToken(app.MsgNoToken)
		return
	}
	s.view.RenderToken(RedactToken(token))
}

// showFailure puts a failed request on the status line: the server's body
// for non-2xx answers (fallback when the body is empty), the error text
// otherwise.
func (s *clientSessionService) showFailure(err error, fallback string) {
	var appErr *adapter.ApplicationError
	if errors.As(err, &appErr) {
		msg := appErr.Body
		if msg == "" {
			msg = fallback
		}
		s.view.ShowStatus(models.StatusError, msg)
		return
	}

	s.view.ShowStatus(models.StatusError, err.Error())
}

// RedactToken keeps the first 8 and the last 6 characters of token joined by
// an ellipsis. Tokens of 14 characters or fewer overlap and are shown
// in full on both sides of the ellipsis.
func RedactToken(token string) string {
	if token == "" {
		return ""
	}

	runes := []rune(token)
	prefix := runes[:min(redactPrefixLen, len(runes))]
	suffix := runes[max(0, len(runes)-redactSuffixLen):]

	return string(prefix) + redactEllipsis + string(suffix)
}
