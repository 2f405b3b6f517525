// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the session API's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup of
// the background workers, signal handling, and graceful shutdown.
package server
