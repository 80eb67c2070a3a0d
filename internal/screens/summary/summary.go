package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/session"
	"github.com/abhisek/plantquiz/internal/store"
	"github.com/abhisek/plantquiz/internal/ui/layout"
	"github.com/abhisek/plantquiz/internal/ui/theme"
)

// SummaryScreen displays one journaled result.
type SummaryScreen struct {
	result session.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for rec.
func New(rec store.ResultRecord) *SummaryScreen {
	p, _ := content.ProfileFor(rec.Category)
	return &SummaryScreen{result: session.Result{
		SessionID:   rec.SessionID,
		Category:    rec.Category,
		Profile:     p,
		Tally:       rec.Tally,
		StartedAt:   rec.StartedAt,
		CompletedAt: rec.CompletedAt,
	}}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Past Walk"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := &s.result
	p := res.Profile
	accent := theme.AccentColor(p.Accent)
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(accent).Bold(true),
		fmt.Sprintf("%s  %s", p.Icon, p.Name)))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), p.Tagline))
	b.WriteString("\n\n")

	d := res.Duration()
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s  ·  %d:%02d",
			res.CompletedAt.Local().Format("Jan 02, 2006 15:04"),
			int(d.Minutes()), int(d.Seconds())%60)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, sh := range res.Breakdown() {
		sp, _ := content.ProfileFor(sh.Category)
		bar := strings.Repeat("█", max(int(sh.Fraction*20), 1))
		line := fmt.Sprintf("%-10s %s %d", sp.Name, bar, sh.Count)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sh.Category == res.Category {
			style = style.Foreground(accent)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("%s  (%d, %d)", p.Field, p.Coord.X, p.Coord.Y)))
	b.WriteString("\n")
	if rel, ok := p.Relations[content.RolePartner]; ok {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("%s: %s", content.RolePartner.DisplayName(), names(rel.Plants))))
		b.WriteString("\n")
	}

	return b.String()
}

func names(cs []quiz.Category) string {
	out := make([]string, len(cs))
	for i, c := range cs {
		p, _ := content.ProfileFor(c)
		out[i] = p.Name
	}
	return strings.Join(out, ", ")
}
