package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	gpuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B71B"))

	cpuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5555FF"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Italic(true)
)
