package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, low-contrast tones for a daily check-in.
var (
	Primary = lipgloss.Color("#38BDF8") // Sky
	Accent  = lipgloss.Color("#FBBF24") // Amber
	Success = lipgloss.Color("#34D399") // Emerald
	Error   = lipgloss.Color("#FB7185") // Rose
	Text    = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim = lipgloss.Color("#64748B") // Slate
	Border  = lipgloss.Color("#334155") // Dark Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
