// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/go-session-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramView implements service.View by forwarding every call to a running
// Bubble Tea program. Calls made while no program is attached are dropped.
type ProgramView struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewProgramView() *ProgramView {
	return &ProgramView{}
}

func (v *ProgramView) Attach(p *tea.Program) {
	v.setSend(p.Send)
}

func (v *ProgramView) Detach() {
	v.setSend(nil)
}

func (v *ProgramView) setSend(send func(tea.Msg)) {
	v.mu.Lock()
	v.send = send
	v.mu.Unlock()
}

func (v *ProgramView) dispatch(msg tea.Msg) {
	v.mu.RLock()
	send := v.send
	v.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

func (v *ProgramView) ShowStatus(kind models.StatusKind, message string) {
	v.dispatch(statusMsg{status: models.Status{Kind: kind, Message: message}})
}

func (v *ProgramView) ShowOutput(text string) {
	v.dispatch(outputMsg{text: text})
}

func (v *ProgramView) SetAuthenticated(authenticated bool) {
	v.dispatch(authMsg{authenticated: authenticated})
}

func (v *ProgramView) RenderToken(display string) {
	v.dispatch(tokenMsg{display: display})
}
