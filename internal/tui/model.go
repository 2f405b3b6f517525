// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

const statusTTL = 4 * time.Second

var writeClipboard = clipboard.WriteAll

type sessionModel struct {
	ctx     context.Context
	session service.ClientSessionService

	inputs [fieldCount]textinput.Model
	focus  int

	authenticated bool
	tokenDisplay  string
	status        models.Status
	output        string

	busy    bool
	spinner spinner.Model
	width   int
}

func newSessionModel(ctx context.Context, session service.ClientSessionService) sessionModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Prompt = "Username: "
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return sessionModel{
		ctx:          ctx,
		session:      session,
		inputs:       [fieldCount]textinput.Model{username, password},
		tokenDisplay: app.MsgNoToken,
		spinner:      sp,
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRefresh())
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case statusMsg:
		m.status = msg.status
		return m, nil

	case outputMsg:
		m.output = msg.text
		return m, nil

	case authMsg:
		m.authenticated = msg.authenticated
		return m, m.syncFocus()

	case tokenMsg:
		m.tokenDisplay = msg.display
		return m, nil

	case opDoneMsg:
		m.busy = false
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = models.Status{Kind: models.StatusError, Message: app.MsgCopyFailed + ": " + msg.err.Error()}
		} else {
			m.status = models.Status{Kind: models.StatusOK, Message: app.MsgTokenCopied}
		}
		return m, cmdClearStatus(m.status)

	case clearStatusMsg:
		if m.status == msg.status {
			m.status = models.Status{}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m, tea.Quit
	}
	// keys other than quit are swallowed while a request is in flight
	if m.busy {
		return m, nil
	}

	if m.authenticated {
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.whoami):
			return m.startOp(m.cmdWhoAmI())
		case key.Matches(msg, keys.logout):
			m.output = ""
			return m.startOp(m.cmdLogout())
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyToken()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		username := m.inputs[fieldUsername].Value()
		password := m.inputs[fieldPassword].Value()
		m.inputs[fieldPassword].SetValue("")
		return m.startOp(m.cmdLogin(username, password))
	case key.Matches(msg, keys.tab):
		return m, m.focusNext()
	case key.Matches(msg, keys.backtab):
		return m, m.focusPrev()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m sessionModel) startOp(op tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, op)
}

func (m *sessionModel) focusNext() tea.Cmd {
	return m.setFocus((m.focus + 1) % fieldCount)
}

func (m *sessionModel) focusPrev() tea.Cmd {
	return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
}

func (m *sessionModel) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// syncFocus puts the cursor back on the username field when the login form
// becomes visible again.
func (m *sessionModel) syncFocus() tea.Cmd {
	if m.authenticated {
		for j := range m.inputs {
			m.inputs[j].Blur()
		}
		return nil
	}
	return m.setFocus(fieldUsername)
}

func (m sessionModel) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		session.Refresh(ctx)
		return nil
	}
}

func (m sessionModel) cmdLogin(username, password string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_ = session.Login(ctx, username, password)
		return opDoneMsg{}
	}
}

func (m sessionModel) cmdWhoAmI() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_ = session.WhoAmI(ctx)
		return opDoneMsg{}
	}
}

func (m sessionModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		_ = session.Logout(ctx)
		return opDoneMsg{}
	}
}

// cmdCopyToken copies the full token, not the redacted form on screen.
func (m sessionModel) cmdCopyToken() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		token := session.Token(ctx)
		if strings.TrimSpace(token) == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: writeClipboard(token)}
	}
}

// cmdClearStatus fades a clipboard notice out after statusTTL unless a newer
// status replaced it in the meantime.
func cmdClearStatus(shown models.Status) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{status: shown}
	})
}
