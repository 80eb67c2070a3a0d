package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/components"
	"github.com/abhisek/plantquiz/internal/ui/theme"
)

const gardenTitleFull = `╔═╗╦  ╔═╗╔╗╔╔╦╗  ╔═╗ ╦ ╦╦╔═╗
╠═╝║  ╠═╣║║║ ║   ║═╬╗║ ║║╔═╝
╩  ╩═╝╩ ╩╝╚╝ ╩   ╚═╝╚╚═╝╩╚═╝`

const gardenTitleCompact = "P · L · A · N · T · Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := gardenTitleFull
	if compact {
		art = gardenTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the journal stats in a bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	runsStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	plantStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var text string
	switch {
	case st.unavailable:
		text = dimStyle.Render("journal off")
	case st.runs == 0:
		text = dimStyle.Render("no walks yet")
	case compact:
		text = fmt.Sprintf("%s %s",
			runsStyle.Render(fmt.Sprintf("❦%d", st.runs)),
			plantStyle.Render(st.last),
		)
	default:
		text = fmt.Sprintf("%s  %s  %s",
			runsStyle.Render(fmt.Sprintf("❦ %d WALKS", st.runs)),
			plantStyle.Render("LAST "+st.last),
			dimStyle.Render("MOSTLY "+st.favorite),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// renderMenu centers the menu buttons in a box matching content width.
func renderMenu(m components.Menu, cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View(compact))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

var frameStyle = lipgloss.NewStyle().BorderForeground(theme.Primary)

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}
