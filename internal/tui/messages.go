// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-session-keeper/models"

type statusMsg struct {
	status models.Status
}

type outputMsg struct {
	text string
}

type authMsg struct {
	authenticated bool
}

type tokenMsg struct {
	display string
}

// opDoneMsg ends the busy state once a session operation has returned.
type opDoneMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	status models.Status
}
