package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/plantquiz/internal/choreo"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/screens/home"
	quizscreen "github.com/abhisek/plantquiz/internal/screens/quiz"
	"github.com/abhisek/plantquiz/internal/screens/welcome"
	"github.com/abhisek/plantquiz/internal/store"
	"github.com/abhisek/plantquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Quiz    *quiz.Quiz
	Timings *choreo.Timings

	// Results is nil when the journal is disabled.
	Results store.ResultRepo

	Logger *zap.Logger

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	homeFactory := func() screen.Screen {
		return newHome(opts)
	}

	var initial screen.Screen = welcome.New(homeFactory)
	if opts.SkipWelcome {
		initial = homeFactory()
	}
	return AppModel{
		router: router.New(initial),
	}
}

func newHome(opts Options) *home.HomeScreen {
	return home.New(home.Options{
		NewQuiz: func() (screen.Screen, error) {
			return quizscreen.New(quizscreen.Options{
				Quiz:    opts.Quiz,
				Timings: opts.Timings,
				Journal: opts.Results,
				Logger:  opts.Logger,
			})
		},
		Results: opts.Results,
		Logger:  opts.Logger,
	})
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(layout.Render(m.chrome(), m.width, m.height, m.router.View))
	return v
}

// chrome collects the frame details the active screen provides.
func (m AppModel) chrome() layout.Chrome {
	var c layout.Chrome
	active := m.router.Active()
	if active == nil {
		return c
	}
	c.Title = active.Title()
	if sp, ok := active.(screen.StatusProvider); ok {
		c.Status = sp.Status()
	}
	if dp, ok := active.(screen.DepthProvider); ok {
		c.Stage, c.Progress = dp.Depth()
	}

	switch kp, ok := active.(screen.KeyHintProvider); {
	case ok:
		c.Hints = kp.KeyHints()
	case m.router.Depth() > 1:
		c.Hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		c.Hints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return c
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Quiz == nil {
		return fmt.Errorf("run app: no quiz loaded")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
