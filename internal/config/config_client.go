// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL. It is resolved once when the adapter
	// is built and never changes afterwards.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage contains the token slot settings of the client.
type ClientStorage struct {
	// DSN is the SQLite database path. Takes precedence over TokenFile.
	DSN string
	// TokenFile is the JSON token file path.
	TokenFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the API base URL and timeout.
	Adapter ClientAdapter
	// Storage contains the token slot settings.
	Storage ClientStorage
	// LogFile is where the client writes its logs.
	LogFile string
	// Command is the positional command line, e.g. ["login", "alice"].
	Command []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:       cfg.Storage.Local.DSN,
			TokenFile: cfg.Storage.Local.TokenFile,
		},
		LogFile: cfg.Log.File,
		Command: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
