package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, Keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, Keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// View renders each item as a fixed-width button. compact drops the
// borders for small terminals.
func (m Menu) View(compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary)
	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text)
	disabledBtn := normalBtn.Foreground(theme.TextDim)

	if !compact {
		border := lipgloss.RoundedBorder()
		selectedBtn = selectedBtn.Border(border).BorderForeground(theme.Primary)
		normalBtn = normalBtn.Border(border).BorderForeground(theme.Border)
		disabledBtn = disabledBtn.Border(border).BorderForeground(theme.Border)
	}

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			buttons = append(buttons, disabledBtn.Render(item.Label))
		case i == m.Selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		default:
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}
	return strings.Join(buttons, "\n")
}
