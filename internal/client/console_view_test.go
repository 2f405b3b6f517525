// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestConsoleView(t *testing.T) {
	tests := []struct {
		name string
		call func(v *consoleView)
		want string
	}{
		{name: "ok status", call: func(v *consoleView) { v.ShowStatus(models.StatusOK, "Logged in") }, want: "[ok] Logged in\n"},
		{name: "error status", call: func(v *consoleView) { v.ShowStatus(models.StatusError, "Login failed") }, want: "[error] Login failed\n"},
		{name: "neutral status", call: func(v *consoleView) { v.ShowStatus(models.StatusNeutral, "hello") }, want: "hello\n"},
		{name: "output verbatim", call: func(v *consoleView) { v.ShowOutput(`{"username":"alice"}`) }, want: "{\"username\":\"alice\"}\n"},
		{name: "output with percent", call: func(v *consoleView) { v.ShowOutput("100% done") }, want: "100% done\n"},
		{name: "authenticated", call: func(v *consoleView) { v.SetAuthenticated(true) }, want: "state: authenticated\n"},
		{name: "logged out", call: func(v *consoleView) { v.SetAuthenticated(false) }, want: "state: logged out\n"},
		{name: "token", call: func(v *consoleView) { v.RenderToken("abc123xy…xyz789") }, want: "token: abc123xy…xyz789\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(newConsoleView(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
