package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

// Trail is the forest path progress bar. Footprints mark answered
// questions along it.
type Trail struct {
	Percent    float64
	Footprints []float64 // positions in [0,1]
	Width      int
	Tint       color.Color
}

// View renders the trail with a trailing percentage.
func (t Trail) View() string {
	const percentWidth = 6 // "  100%"

	barWidth := t.Width - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * t.Percent)
	filled = max(0, min(filled, barWidth))

	cells := make([]string, barWidth)
	for i := range cells {
		cells[i] = " "
	}
	for _, pos := range t.Footprints {
		i := int(float64(barWidth)*pos) - 1
		if i >= 0 && i < barWidth {
			cells[i] = "•"
		}
	}

	tint := t.Tint
	if tint == nil {
		tint = theme.Primary
	}
	filledStr := lipgloss.NewStyle().
		Background(tint).
		Foreground(theme.BgDark).
		Render(strings.Join(cells[:filled], ""))
	emptyStr := theme.ProgressEmpty.
		Render(strings.Join(cells[filled:], ""))

	percent := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(t.Percent*100)))

	return filledStr + emptyStr + percent
}
