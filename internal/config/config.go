// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, seed accounts and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client token slot settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeout settings for the API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the API: base URL and timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds client log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (e.g. "login alice"). Only the flags source sets it.
	Args []string
}

// App holds token lifecycle settings and other application-level values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SeedUsers lists "login:password" accounts created at server startup.
	// Env: APP_SEED_USERS (comma separated)
	SeedUsers []string `env:"SEED_USERS" envSeparator:","`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server's PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client's token slot settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string. When empty the server keeps
	// users and sessions in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings of the client-side token slot.
type Local struct {
	// DSN is the path of the SQLite database holding the token slot.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`

	// TokenFile is the path of the JSON file holding the token slot. Used
	// when DSN is empty.
	// Env: STORAGE_LOCAL_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Server holds network and timeout settings for the API server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the API base URL ("http://host:port" or "host:port").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-session-keeper",
			TokenDuration: time.Hour,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:     "localhost:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionCleanupInterval: 5 * time.Minute,
		},
		Log: Log{
			File: "session-client.log",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Flags are read from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
