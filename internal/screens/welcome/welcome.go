package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// Growth frames of the seedling, smallest first.
var seedlingFrames = []string{
	`


    .
 ───┴───`,
	`

    ,
    │
 ───┴───`,
	`  \ /
   \│/
    │
    │
 ───┴───`,
}

// leaves drift beside the seedling
var leafFrames = []string{"❦", "❧"}

type tickMsg time.Time

// WelcomeScreen shows a growing seedling before handing over to the home
// screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) frame() string {
	switch {
	case w.elapsed < phase1End:
		return seedlingFrames[0]
	case w.elapsed < phase2End:
		return seedlingFrames[1]
	default:
		return seedlingFrames[2]
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(w.frame())

	// Leaves drift once the sprout is up.
	if w.elapsed >= phase1End {
		leaf := leafFrames[w.tickCount%len(leafFrames)]
		l1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(leaf)
		l2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(leaf)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = l1 + "   " + lines[1] + "   " + l2
		}
		if len(lines) > 3 {
			lines[3] = l2 + "   " + lines[3] + "   " + l1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Which plant grows in you?")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
