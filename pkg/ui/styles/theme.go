// Package styles provides a centralized theme and style system for the lead_review UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (brand red)
	ColorAccent = lipgloss.Color("161")

	// Secondary accent (slate blue) for agent messages and borders
	ColorSecondary = lipgloss.Color("67")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text

	// Semantic colors
	ColorError   = lipgloss.Color("196")
	ColorWarning = lipgloss.Color("214")
	ColorSuccess = lipgloss.Color("42")

	ColorPlaceholder = lipgloss.Color("240")
	ColorDisabled    = lipgloss.Color("238")

	// Border colors
	ColorBorder      = lipgloss.Color("161")
	ColorBorderMuted = lipgloss.Color("60")
)

// Panel/Box styles
var (
	// BoxStyle is the default rounded box for overlays and panels
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// TranscriptBoxStyle frames the chat transcript
	TranscriptBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderMuted).
				Padding(0, 1)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Chat transcript styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	AgentMessageStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)
)

// Selection and highlighting
var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorAccent).
			Bold(true)
)

// Input and form styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(14)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorPlaceholder).
				Italic(true)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorSecondary).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Background(ColorAccent).
				Bold(true).
				Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Background(ColorDisabled).
				Padding(0, 2)
)

// Feedback styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Background(ColorError).
				Bold(true).
				Padding(0, 1)

	SuccessBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("16")).
				Background(ColorSuccess).
				Bold(true).
				Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)
