// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	loginHelp  = "enter: log in • tab/shift+tab: switch field • ctrl+c: quit"
	actionHelp = "w: who am I • l: log out • c: copy token • q: quit"
)

func (m sessionModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Session Keeper"))
	b.WriteString("\n\n")

	if m.authenticated {
		b.WriteString("Token: ")
		b.WriteString(tokenStyle.Render(m.tokenDisplay))
		b.WriteString("\n")
	} else {
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.output != "" {
		b.WriteString(outputStyle.Render(m.output))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.authenticated {
		b.WriteString(helpStyle.Render(actionHelp))
	} else {
		b.WriteString(helpStyle.Render(loginHelp))
	}

	style := appStyle
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(b.String())
}

func (m sessionModel) statusLine() string {
	var parts []string
	if m.busy {
		parts = append(parts, m.spinner.View())
	}
	if m.status.Message != "" {
		parts = append(parts, statusStyle(m.status.Kind).Render(m.status.Message))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}
