package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/screens/summary"
	"github.com/abhisek/plantquiz/internal/store"
	"github.com/abhisek/plantquiz/internal/ui/layout"
	"github.com/abhisek/plantquiz/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Counts  map[quiz.Category]int
	Err     error
}

// HistoryScreen lists past results, newest first.
type HistoryScreen struct {
	repo     store.ResultRepo
	results  []store.ResultRecord
	counts   map[quiz.Category]int
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		results, err := s.repo.Recent(ctx, pageSize)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		counts, err := s.repo.Counts(ctx)
		if err != nil {
			return historyLoadedMsg{Results: results}
		}
		return historyLoadedMsg{Results: results, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.counts = msg.Counts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				rec := s.results[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: summary.New(rec)}
				}
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No walks yet. The forest is waiting!")
	}

	// Narrow terminals get the date without time and duration.
	compact := layout.IsCompactWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	if tally := s.renderCounts(); tally != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tally))
		b.WriteString("\n\n")
	}

	for i, rec := range s.results {
		p, _ := content.ProfileFor(rec.Category)
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		var line string
		if compact {
			line = fmt.Sprintf("%s%s  %s %-10s", prefix,
				rec.CompletedAt.Local().Format("Jan 02"), p.Icon, p.Name)
		} else {
			d := rec.CompletedAt.Sub(rec.StartedAt)
			line = fmt.Sprintf("%s%s  %d:%02d  %s %-10s", prefix,
				rec.CompletedAt.Local().Format("Jan 02, 2006 15:04"),
				int(d.Minutes()), int(d.Seconds())%60, p.Icon, p.Name)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.AccentColor(p.Accent)).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) renderCounts() string {
	var parts []string
	for _, c := range quiz.AllCategories() {
		n := s.counts[c]
		if n == 0 {
			continue
		}
		p, _ := content.ProfileFor(c)
		parts = append(parts, fmt.Sprintf("%s %d", p.Icon, n))
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "   "))
}
