// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-session-keeper/models"
)

// consoleView prints view updates as plain lines, one per call.
type consoleView struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsoleView(out io.Writer) *consoleView {
	return &consoleView{out: out}
}

func (v *consoleView) println(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, _ = fmt.Fprintf(v.out, format+"\n", args...)
}

func (v *consoleView) ShowStatus(kind models.StatusKind, message string) {
	switch kind {
	case models.StatusOK, models.StatusError:
		v.println("[%s] %s", kind, message)
	default:
		v.println("%s", message)
	}
}

func (v *consoleView) ShowOutput(text string) {
	v.println("%s", text)
}

func (v *consoleView) SetAuthenticated(authenticated bool) {
	if authenticated {
		v.println("state: authenticated")
		return
	}
	v.println("state: logged out")
}

func (v *consoleView) RenderToken(display string) {
	v.println("token: %s", display)
}
