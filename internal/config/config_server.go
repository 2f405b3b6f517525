// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and account settings of the API server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	SeedUsers     []string
	Version       string
}

// ServerConfig is the API server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	DB      DB
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			SeedUsers:     cfg.App.SeedUsers,
			Version:       cfg.App.Version,
		},
		DB:      cfg.Storage.DB,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
