// Package tui holds the full screen renderers: a bubbletea program and a tcell screen.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	CellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
