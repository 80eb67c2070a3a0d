package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/screens/history"
	"github.com/abhisek/plantquiz/internal/store"
	"github.com/abhisek/plantquiz/internal/ui/components"
	"github.com/abhisek/plantquiz/internal/ui/layout"
)

const statsTimeout = 2 * time.Second

// stats is the journal digest shown above the menu.
type stats struct {
	unavailable bool
	runs        int
	last        string
	favorite    string
	lastAt      time.Time
}

type statsLoadedMsg struct {
	stats stats
}

// Options configures the home screen.
type Options struct {
	// NewQuiz builds a fresh quiz screen for each walk.
	NewQuiz func() (screen.Screen, error)

	// Results is nil when the journal is disabled.
	Results store.ResultRepo

	Logger *zap.Logger
	Now    func() time.Time
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	stats  stats
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := &HomeScreen{
		opts:  opts,
		stats: stats{unavailable: opts.Results == nil},
	}

	items := []components.MenuItem{
		{Label: "START WALK", Action: h.startQuiz},
		{Label: "HISTORY", Disabled: opts.Results == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(opts.Results)}
			}
		}},
		{Label: "LEAVE", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	if h.opts.NewQuiz == nil {
		h.errMsg = "no questions loaded"
		return nil
	}
	s, err := h.opts.NewQuiz()
	if err != nil {
		h.opts.Logger.Error("build quiz screen", zap.Error(err))
		h.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Refresh reloads the journal stats after a walk.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.opts.Results
	if repo == nil {
		return nil
	}
	log := h.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		defer cancel()

		recent, err := repo.Recent(ctx, 1)
		if err != nil {
			log.Warn("load recent results", zap.Error(err))
			return statsLoadedMsg{stats: stats{unavailable: true}}
		}
		counts, err := repo.Counts(ctx)
		if err != nil {
			log.Warn("load result counts", zap.Error(err))
			return statsLoadedMsg{stats: stats{unavailable: true}}
		}
		return statsLoadedMsg{stats: digest(recent, counts)}
	}
}

func digest(recent []store.ResultRecord, counts map[quiz.Category]int) stats {
	var st stats
	best := -1
	for _, c := range quiz.AllCategories() {
		n := counts[c]
		st.runs += n
		if n > best && n > 0 {
			best = n
			st.favorite = displayName(c)
		}
	}
	if len(recent) > 0 {
		st.last = displayName(recent[0].Category)
		st.lastAt = recent[0].CompletedAt
	}
	return st
}

func displayName(c quiz.Category) string {
	if p, ok := content.ProfileFor(c); ok {
		return strings.ToUpper(p.Name)
	}
	return c.String()
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.stats.runs == 0:
		return MascotSeedling
	case h.opts.Now().Sub(h.stats.lastAt) < 24*time.Hour:
		return MascotBloom
	default:
		return MascotSprout
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.stats = msg.stats
		return h, nil
	case tea.KeyPressMsg:
		h.errMsg = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	sections = append(sections, renderMenu(h.menu, cw, compact))
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height, frameStyle)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
