package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)
