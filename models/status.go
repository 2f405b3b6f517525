// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind classifies the status line shown to the user after an
// operation. It is transient display state and never persisted.
type StatusKind int

const (
	// StatusNeutral is the initial state and the state of informational messages.
	StatusNeutral StatusKind = iota
	// StatusOK marks a successful operation.
	StatusOK
	// StatusError marks a failed operation.
	StatusError
)

// String returns the lower-case name of the kind ("neutral", "ok", "error").
func (k StatusKind) String() string {
	switch k {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "neutral"
	}
}

// Status is a status line: its kind and the message displayed with it.
type Status struct {
	Kind    StatusKind
	Message string
}
