// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-session-keeper/internal/app"
	"github.com/MKhiriev/go-session-keeper/internal/mock"
	"github.com/MKhiriev/go-session-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// execute runs cmd and, for batches, every command inside it, returning
// all produced messages.
func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, execute(c)...)
	}
	return out
}

func update(t *testing.T, m sessionModel, msg tea.Msg) (sessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(sessionModel)
	require.True(t, ok)
	return sm, cmd
}

func authenticatedModel(t *testing.T, session *mock.MockClientSessionService) sessionModel {
	t.Helper()
	m := newSessionModel(context.Background(), session)
	m, _ = update(t, m, authMsg{authenticated: true})
	m, _ = update(t, m, tokenMsg{display: "abc123xy…xyz789"})
	return m
}

func TestInit_RefreshesView(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	session.EXPECT().Refresh(gomock.Any()).Times(1)

	m := newSessionModel(context.Background(), session)
	execute(m.Init())
}

func TestLoginForm_SubmitsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	session.EXPECT().Login(gomock.Any(), "alice", "secret").Return(nil)

	m := newSessionModel(context.Background(), session)
	m, _ = update(t, m, runes("alice"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("secret"))

	assert.Equal(t, "alice", m.inputs[fieldUsername].Value())
	assert.Equal(t, "secret", m.inputs[fieldPassword].Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.busy)
	assert.Empty(t, m.inputs[fieldPassword].Value(), "password must not outlive the attempt")

	msgs := execute(cmd)
	assert.Contains(t, msgs, tea.Msg(opDoneMsg{}))

	m, _ = update(t, m, opDoneMsg{})
	assert.False(t, m.busy)
}

func TestLoginForm_FocusCycles(t *testing.T) {
	m := newSessionModel(context.Background(), nil)
	require.Equal(t, fieldUsername, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldPassword, m.focus)
	assert.True(t, m.inputs[fieldPassword].Focused())
	assert.False(t, m.inputs[fieldUsername].Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldUsername, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPassword, m.focus)
}

func TestLoginForm_HotkeysAreTypedAsText(t *testing.T) {
	m := newSessionModel(context.Background(), nil)

	m, _ = update(t, m, runes("q"))
	m, _ = update(t, m, runes("w"))

	assert.Equal(t, "qw", m.inputs[fieldUsername].Value())
}

func TestAuthenticated_Hotkeys(t *testing.T) {
	tests := []struct {
		name   string
		key    tea.KeyMsg
		expect func(s *mock.MockClientSessionServiceMockRecorder)
	}{
		{
			name: "w runs whoami",
			key:  runes("w"),
			expect: func(s *mock.MockClientSessionServiceMockRecorder) {
				s.WhoAmI(gomock.Any()).Return(nil)
			},
		},
		{
			name: "l runs logout",
			key:  runes("l"),
			expect: func(s *mock.MockClientSessionServiceMockRecorder) {
				s.Logout(gomock.Any()).Return(nil)
			},
		},
		{
			name: "failed whoami still ends busy state",
			key:  runes("w"),
			expect: func(s *mock.MockClientSessionServiceMockRecorder) {
				s.WhoAmI(gomock.Any()).Return(errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock.NewMockClientSessionService(ctrl)
			tt.expect(session.EXPECT())

			m := authenticatedModel(t, session)
			m, cmd := update(t, m, tt.key)
			assert.True(t, m.busy)
			assert.Contains(t, execute(cmd), tea.Msg(opDoneMsg{}))
		})
	}
}

func TestAuthenticated_LogoutClearsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)

	m := authenticatedModel(t, session)
	m, _ = update(t, m, outputMsg{text: `{"username":"alice"}`})
	m, _ = update(t, m, runes("l"))

	assert.Empty(t, m.output)
}

func TestAuthenticated_QuitKeys(t *testing.T) {
	m := authenticatedModel(t, nil)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCtrlC_QuitsEvenWhenBusy(t *testing.T) {
	m := newSessionModel(context.Background(), nil)
	m.busy = true

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBusy_SwallowsKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)

	m := authenticatedModel(t, session)
	m.busy = true

	_, cmd := update(t, m, runes("w"))
	assert.Nil(t, cmd)
}

func TestCopyToken(t *testing.T) {
	origWrite := writeClipboard
	t.Cleanup(func() { writeClipboard = origWrite })

	tests := []struct {
		name       string
		token      string
		writeErr   error
		wantKind   models.StatusKind
		wantCopied string
	}{
		{name: "copies full token", token: "abc123xyz789", wantKind: models.StatusOK, wantCopied: "abc123xyz789"},
		{name: "no token", token: "", wantKind: models.StatusError},
		{name: "clipboard failure", token: "abc123xyz789", writeErr: errors.New("no xclip"), wantKind: models.StatusError, wantCopied: "abc123xyz789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			writeClipboard = func(text string) error {
				copied = text
				return tt.writeErr
			}

			ctrl := gomock.NewController(t)
			session := mock.NewMockClientSessionService(ctrl)
			session.EXPECT().Token(gomock.Any()).Return(tt.token)

			m := authenticatedModel(t, session)
			_, cmd := update(t, m, runes("c"))
			require.NotNil(t, cmd)

			msg, ok := cmd().(copiedMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantCopied, copied)

			m, clearCmd := update(t, m, msg)
			assert.Equal(t, tt.wantKind, m.status.Kind)
			assert.NotNil(t, clearCmd)
			if tt.wantKind == models.StatusOK {
				assert.Equal(t, app.MsgTokenCopied, m.status.Message)
			}
		})
	}
}

func TestViewMessages_UpdateState(t *testing.T) {
	m := newSessionModel(context.Background(), nil)
	assert.Equal(t, app.MsgNoToken, m.tokenDisplay)

	m, _ = update(t, m, statusMsg{status: models.Status{Kind: models.StatusError, Message: "Incorrect username or password"}})
	assert.Equal(t, models.StatusError, m.status.Kind)
	assert.Equal(t, "Incorrect username or password", m.status.Message)

	m, _ = update(t, m, authMsg{authenticated: true})
	assert.True(t, m.authenticated)
	assert.False(t, m.inputs[fieldUsername].Focused())

	m, _ = update(t, m, tokenMsg{display: "abc123xy…xyz789"})
	assert.Equal(t, "abc123xy…xyz789", m.tokenDisplay)

	m, _ = update(t, m, outputMsg{text: "hello"})
	assert.Equal(t, "hello", m.output)

	m, _ = update(t, m, authMsg{authenticated: false})
	assert.False(t, m.authenticated)
	assert.Equal(t, fieldUsername, m.focus)
	assert.True(t, m.inputs[fieldUsername].Focused())
}

func TestClearStatus_OnlyClearsMatchingStatus(t *testing.T) {
	m := newSessionModel(context.Background(), nil)
	copied := models.Status{Kind: models.StatusOK, Message: app.MsgTokenCopied}
	newer := models.Status{Kind: models.StatusOK, Message: app.MsgLoggedOut}

	m.status = newer
	m, _ = update(t, m, clearStatusMsg{status: copied})
	assert.Equal(t, newer, m.status)

	m.status = copied
	m, _ = update(t, m, clearStatusMsg{status: copied})
	assert.Equal(t, models.Status{}, m.status)
}

func TestView_Render(t *testing.T) {
	m := newSessionModel(context.Background(), nil)
	out := m.View()
	assert.Contains(t, out, "Username:")
	assert.Contains(t, out, "Password:")
	assert.Contains(t, out, loginHelp)
	assert.NotContains(t, out, "Token:")

	m, _ = update(t, m, authMsg{authenticated: true})
	m, _ = update(t, m, tokenMsg{display: "abc123xy…xyz789"})
	m, _ = update(t, m, statusMsg{status: models.Status{Kind: models.StatusOK, Message: app.MsgLoggedIn}})
	out = m.View()
	assert.Contains(t, out, "abc123xy…xyz789")
	assert.Contains(t, out, app.MsgLoggedIn)
	assert.Contains(t, out, actionHelp)
	assert.NotContains(t, out, "Password:")
}
