// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args into a partial
// [StructuredConfig]. Positional arguments left after the flags are stored
// in Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server-timeout server request timeout (e.g. "30s")
//	-d server database DSN
//	-api client API base URL
//	-request-timeout client request timeout (e.g. "10s")
//	-token-file client JSON token file path
//	-local-dsn client SQLite token database path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h")
//	-seed-users comma separated login:password accounts
//	-app-version reported application version
//	-cleanup-interval expired session purge interval
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("session-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var serverTimeout, requestTimeout, tokenDuration, cleanupInterval time.Duration
	var databaseDSN, apiAddress, tokenFile, localDSN string
	var tokenSignKey, tokenIssuer, seedUsers, appVersion string
	var logFile, jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&apiAddress, "api", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&tokenFile, "token-file", "", "Token file path")
	fs.StringVar(&localDSN, "local-dsn", "", "Local SQLite DSN")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&seedUsers, "seed-users", "", "Seed accounts login:password,...")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired session purge interval")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SeedUsers:     splitList(seedUsers),
			Version:       appVersion,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{DSN: localDSN, TokenFile: tokenFile},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SessionCleanupInterval: cleanupInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (listen on all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
