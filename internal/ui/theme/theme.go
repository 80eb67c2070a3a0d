package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: forest floor at dusk.
var (
	Primary   = lipgloss.Color("#7FB069") // Moss
	Secondary = lipgloss.Color("#9B7EDE") // Lavender
	Accent    = lipgloss.Color("#E6AA68") // Amber
	Success   = lipgloss.Color("#8FD694") // Leaf
	Error     = lipgloss.Color("#E07A5F") // Terracotta
	Text      = lipgloss.Color("#F2EFE6") // Parchment
	TextDim   = lipgloss.Color("#A3A99A") // Lichen
	BgDark    = lipgloss.Color("#14201A") // Night forest
	BgCard    = lipgloss.Color("#1F2E25") // Undergrowth
	Border    = lipgloss.Color("#355040") // Bark
)

// Depth stage palettes, from the forest edge inward.
var stageColors = [...]color.Color{
	lipgloss.Color("#A8C69F"), // entrance: open and light
	lipgloss.Color("#5E8C61"), // mid: thicker canopy
	lipgloss.Color("#2F4F3A"), // deep: old growth
}

// StageColor returns the backdrop tint for a 1-based depth stage.
func StageColor(stage int) color.Color {
	if stage < 1 {
		stage = 1
	}
	if stage > len(stageColors) {
		stage = len(stageColors)
	}
	return stageColors[stage-1]
}

// AccentColor parses a result accent, falling back to Primary.
func AccentColor(hex string) color.Color {
	if hex == "" {
		return Primary
	}
	return lipgloss.Color(hex)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Exiting and Entering tint the question card mid-transition.
	Exiting = lipgloss.NewStyle().
		Foreground(TextDim).
		Faint(true)

	Entering = lipgloss.NewStyle().
			Foreground(Secondary)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Banner = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	Insight = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)
