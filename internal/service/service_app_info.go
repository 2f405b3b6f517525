// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// Endpoint describes one route of the HTTP API for the generated docs.
type Endpoint struct {
	Method      string
	Path        string
	Auth        bool
	Request     string
	Responses   []string
	Description string
}

// Endpoints is the reference of the session API served by the server.
var Endpoints = []Endpoint{
	{
		Method:      "POST",
		Path:        "/login",
		Request:     "form: username, password",
		Description: "Exchange credentials for a bearer token.",
		Responses: []string{
			`200 {"access_token": "<token>", "token_type": "bearer"}`,
			"400 " + app.MsgInvalidDataProvided,
			"401 " + app.MsgInvalidLoginPassword,
		},
	},
	{
		Method:      "POST",
		Path:        "/logout",
		Auth:        true,
		Description: "Revoke the presented token.",
		Responses: []string{
			`200 {"message": "` + app.MsgSuccessfullyLoggedOut + `"}`,
			"401 " + app.MsgTokenIsExpiredOrInvalid,
		},
	},
	{
		Method:      "GET",
		Path:        "/me",
		Auth:        true,
		Description: "Return the owner of the presented token.",
		Responses: []string{
			`200 {"username": "<login>"}`,
			"401 " + app.MsgTokenIsExpiredOrInvalid,
		},
	},
	{
		Method:      "GET",
		Path:        "/api/version",
		Description: "Return the server version as plain text.",
		Responses:   []string{"200 <version>"},
	},
	{
		Method:      "GET",
		Path:        "/docs",
		Description: "Return this document.",
		Responses:   []string{"200 text/markdown"},
	},
}

type appInfoService struct {
	appVersion string
	apiDocs    string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		apiDocs:    renderAPIDocs(cfg.Version, Endpoints),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAPIDocs(ctx context.Context) string {
	return s.apiDocs
}

func renderAPIDocs(version string, endpoints []Endpoint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Session API %s\n\n", version)
	b.WriteString("Authenticated routes expect `Authorization: Bearer <token>`.\n")

	for _, e := range endpoints {
		fmt.Fprintf(&b, "\n## %s %s\n\n%s\n\n", e.Method, e.Path, e.Description)
		if e.Auth {
			b.WriteString("Requires a bearer token.\n\n")
		}
		if e.Request != "" {
			fmt.Fprintf(&b, "Request: %s\n\n", e.Request)
		}
		b.WriteString("Responses:\n\n")
		for _, r := range e.Responses {
			fmt.Fprintf(&b, "- `%s`\n", r)
		}
	}

	return b.String()
}
