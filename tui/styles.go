package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	primaryColor = lipgloss.Color("#7C3AED")
	longColor    = lipgloss.Color("#10B981")
	shortColor   = lipgloss.Color("#EF4444")
	warnColor    = lipgloss.Color("#F59E0B")

	borderColor      = lipgloss.Color("#374151")
	focusBorderColor = lipgloss.Color("#7C3AED")

	textColor          = lipgloss.Color("#F9FAFB")
	textSecondaryColor = lipgloss.Color("#9CA3AF")
	textMutedColor     = lipgloss.Color("#6B7280")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	focusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(focusBorderColor).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textSecondaryColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	optionStyle = lipgloss.NewStyle().
			Foreground(textMutedColor).
			Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(lipgloss.Color("#374151")).
				Padding(0, 1)

	longStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(longColor)

	shortStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(shortColor)

	warnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	errStyle = lipgloss.NewStyle().
			Foreground(shortColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)
)
