package ui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)  // cyan
	speakerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)  // green
	farewellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)  // yellow
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)  // red
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)
