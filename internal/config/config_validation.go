// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 ||
		cfg.Adapter.RequestTimeout < 0 || cfg.Workers.SessionCleanupInterval < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DSN != "" && strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	for _, seed := range cfg.App.SeedUsers {
		if _, _, err := ParseSeedUser(seed); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Workers.SessionCleanupInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ParseSeedUser splits a "login:password" seed entry. The password may
// itself contain colons.
func ParseSeedUser(seed string) (login, password string, err error) {
	login, password, ok := strings.Cut(seed, ":")
	if !ok || strings.TrimSpace(login) == "" || password == "" {
		return "", "", fmt.Errorf("seed user %q must look like login:password", seed)
	}

	return strings.TrimSpace(login), password, nil
}
