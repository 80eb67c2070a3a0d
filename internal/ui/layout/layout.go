package layout

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the width below which the chrome and list screens
	// drop secondary detail.
	CompactWidth = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Chrome describes the frame drawn around the active screen.
type Chrome struct {
	Title  string
	Status string
	Hints  []KeyHint

	// Stage is the forest depth (1-3) tinting the frame; 0 outside a walk.
	Stage int

	// Progress is the walked share of the trail, drawn under the header.
	Progress float64
}

// IsCompactWidth reports whether width calls for the compact rendering.
func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("🌱\n\nThe forest needs more room.\nResize to %d×%d (now %d×%d).",
			MinWidth, MinHeight, width, height))
}

func (c Chrome) tint() color.Color {
	if c.Stage < 1 {
		return theme.Border
	}
	return theme.StageColor(c.Stage)
}

func (c Chrome) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.tint()).
		Padding(0, 1)
}

// RenderHeader draws the brand, title and status on one row with the trail
// rule beneath it.
func RenderHeader(c Chrome, width int) string {
	inner := max(width-4, 0)

	brand := "🌿 plantquiz"
	if IsCompactWidth(width) {
		brand = "🌿"
	}
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(c.Status)
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0)).
		Align(lipgloss.Center).
		Render(c.Title)

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, title, right)
	return c.box().Width(width).Render(row + "\n" + c.trailRule(inner))
}

// trailRule is a full-width line, solid for the walked share in the stage
// tint.
func (c Chrome) trailRule(width int) string {
	walked := min(max(int(c.Progress*float64(width)+0.5), 0), width)
	return lipgloss.NewStyle().Foreground(c.tint()).Render(strings.Repeat("━", walked)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-walked))
}

// RenderFooter renders the key hints.
func RenderFooter(c Chrome, width int) string {
	sep := "   "
	if IsCompactWidth(width) {
		sep = "  "
	}
	parts := make([]string, 0, len(c.Hints))
	for _, h := range c.Hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return c.box().Width(width).Render(strings.Join(parts, sep))
}

// Render lays out the chrome around body, which draws into the space left
// between header and footer.
func Render(c Chrome, width, height int, body func(width, height int) string) string {
	header := RenderHeader(c, width)
	footer := RenderFooter(c, width)
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(h).
		MaxHeight(h).
		Render(body(width, h))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
