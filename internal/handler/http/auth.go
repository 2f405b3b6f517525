// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	formUsername = "username"
	formPassword = "password"
)

// login exchanges form credentials for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if !r.PostForm.Has(formUsername) || !r.PostForm.Has(formPassword) {
		log.Error().Msg("login form is missing fields")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, r.PostForm.Get(formUsername), r.PostForm.Get(formPassword))
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// logout revokes the session of the presented token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	if err := h.services.AuthService.Logout(ctx, session); err != nil {
		log.Err(err).Str("login", session.Login).Msg("logout failed")
		writeError(w, err)
		return
	}

	log.Info().Str("login", session.Login).Msg("user logged out")
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSuccessfullyLoggedOut}, http.StatusOK)
}

// me returns the owner of the presented token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("no session in request context")))
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{Username: session.Login}, http.StatusOK)
}
