// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is used when no API address is configured.
const DefaultBaseURL = "http://localhost:8000"

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the HTTP/REST implementation of
// [AuthAdapter]. The base URL is resolved once from adapterCfg.HTTPAddress
// (DefaultBaseURL when empty) and never changes afterwards.
//
// Returns an error if the address cannot be parsed as a URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	address := adapterCfg.HTTPAddress
	if strings.TrimSpace(address) == "" {
		address = DefaultBaseURL
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpAuthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [AuthAdapter]. The username and password are sent
// unchanged as form fields.
func (h *httpAuthAdapter) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	const op = "login"

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/login")
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return models.LoginResponse{}, &TransportError{Op: op, Err: err}
	}
	if err = mapHTTPError(op, resp); err != nil {
		h.logger.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("login rejected")
		return models.LoginResponse{}, err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w: %w", ErrMalformedResponse, err)
	}
	if loginResp.AccessToken == "" {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w: no access_token", ErrMalformedResponse)
	}

	return loginResp, nil
}

// Me implements [AuthAdapter].
func (h *httpAuthAdapter) Me(ctx context.Context, token string) (string, error) {
	const op = "me"

	resp, err := h.authedRequest(ctx, token).Get("/me")
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return "", &TransportError{Op: op, Err: err}
	}
	if err = mapHTTPError(op, resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Logout implements [AuthAdapter].
func (h *httpAuthAdapter) Logout(ctx context.Context, token string) (string, error) {
	const op = "logout"

	resp, err := h.authedRequest(ctx, token).Post("/logout")
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return "", &TransportError{Op: op, Err: err}
	}
	if err = mapHTTPError(op, resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// authedRequest always sets the Authorization header, an empty token
// included.
func (h *httpAuthAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token)
}
