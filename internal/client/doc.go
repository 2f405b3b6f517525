// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the session client application runtime.
//
// It wires the auth adapter, the token slot and the session service to one
// of two views: the interactive terminal UI (the default) or a console view
// used by the one-shot commands login, whoami, logout and status.
package client
