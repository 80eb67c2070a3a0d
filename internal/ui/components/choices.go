package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

// Choices is a forced-choice option list. There is no right answer; it only
// reports which option was picked.
type Choices struct {
	Options  []string
	Selected int
}

// NewChoices creates a Choices list with the first option selected.
func NewChoices(options []string) Choices {
	return Choices{Options: options}
}

// Update moves the cursor. picked is the chosen index, or -1 when the
// message did not pick an option. Digit keys pick directly.
func (c Choices) Update(msg tea.Msg) (next Choices, picked int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, -1
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if c.Selected > 0 {
			c.Selected--
		}
	case key.Matches(kmsg, Keys.Down):
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case key.Matches(kmsg, Keys.Select):
		return c, c.Selected
	default:
		if i, ok := DigitIndex(kmsg.String()); ok && i < len(c.Options) {
			c.Selected = i
			return c, i
		}
	}
	return c, -1
}

// View renders the options. dim greys out the list while the card is
// leaving.
func (c Choices) View(dim bool) string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !dim {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := theme.Unselected
		switch {
		case dim:
			style = theme.Exiting
		case i == c.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Frame wraps content in a double-border frame centered in width x height.
func Frame(content string, width, height int, border lipgloss.Style) string {
	return border.
		Border(lipgloss.DoubleBorder()).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ContentWidth returns the uniform inner width used for framed sections.
func ContentWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 64))
}
