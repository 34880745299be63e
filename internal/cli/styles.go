// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (hard-hat yellow).
	PrimaryColor = lipgloss.Color("#FFB703")
	// SuccessColor indicates successful operations and money amounts.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// FreshColor marks leads issued within the freshness window.
	FreshColor = lipgloss.Color("#95E14A") // Green
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// CostStyle formats reported-cost amounts.
	CostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	// FreshStyle formats the NEW badge on fresh leads.
	FreshStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FreshColor)

	// SavedStyle formats the bookmark marker.
	SavedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)
