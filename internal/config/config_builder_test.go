// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

func TestBuild_NegativeDurationFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SessionCleanupInterval)
}

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestLoadStructuredConfig_Priority verifies defaults < env < flags < JSON.
func TestLoadStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeJSONFile(t, `{"app": {"version": "from-json"}}`)
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "from-env",
		"APP_TOKEN_ISSUER":   "env-issuer",
		"APP_TOKEN_SIGN_KEY": "env-key",
		"ADAPTER_ADDRESS":    "http://env:8000",
	})

	cfg, err := loadStructuredConfig([]string{
		"-api", "http://flag:8000",
		"-token-sign-key", "flag-key",
		"-c", jsonPath,
		"whoami",
	})
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.Version)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "http://flag:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, []string{"whoami"}, cfg.Args)
}
