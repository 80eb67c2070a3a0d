package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

const bannerArt = `
 ╔═╗╦  ╔═╗╔╗╔╔╦╗  ╔═╗ ╦ ╦╦╔═╗
 ╠═╝║  ╠═╣║║║ ║   ║═╬╗║ ║║╔═╝
 ╩  ╩═╝╩ ╩╝╚╝ ╩   ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "P L A N T Q U I Z"

// RenderBanner returns the title banner in the primary color. Terminals
// narrower than 40 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
