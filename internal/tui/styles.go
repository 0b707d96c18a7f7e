package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Width(16)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("205")).
				Bold(true)

	requiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	scopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Padding(0, 1)

	scopeActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1).
				Bold(true)

	scopeHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Padding(0, 1).
				Underline(true)

	tagChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("240")).
			Padding(0, 1).
			MarginRight(1)

	submitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder())

	submitFocusedStyle = submitStyle.
				Foreground(lipgloss.Color("230")).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)
