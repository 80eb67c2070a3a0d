package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotSeedling MascotVariant = iota // No results yet
	MascotSprout                        // Has played before
	MascotBloom                         // Finished a quiz in the last day
)

const mascotSeedling = `
   ,
   │
 ──┴──`

const mascotSprout = `
  \│/
   │
 ──┴──`

const mascotBloom = ` ✿ ✿
  \│/
   │
 ──┴──`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotSeedling
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotBloom:
		art = mascotBloom
		fg = theme.Secondary
	case MascotSprout:
		art = mascotSprout
		fg = theme.Success
	default:
		art = mascotSeedling
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
