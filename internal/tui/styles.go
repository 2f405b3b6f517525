// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-session-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	tokenStyle  = lipgloss.NewStyle().Bold(true)
	outputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	neutralStyle = lipgloss.NewStyle().Faint(true)
)

func statusStyle(kind models.StatusKind) lipgloss.Style {
	switch kind {
	case models.StatusOK:
		return okStyle
	case models.StatusError:
		return errorStyle
	default:
		return neutralStyle
	}
}
