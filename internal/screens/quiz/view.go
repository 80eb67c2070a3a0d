package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantquiz/internal/choreo"
	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/scene"
	"github.com/abhisek/plantquiz/internal/session"
	"github.com/abhisek/plantquiz/internal/ui/components"
	"github.com/abhisek/plantquiz/internal/ui/layout"
	"github.com/abhisek/plantquiz/internal/ui/theme"
)

var stageNames = map[choreo.Stage]string{
	choreo.StageEntrance: "Forest Edge",
	choreo.StageMid:      "Canopy",
	choreo.StageDeep:     "Old Growth",
}

func (s *QuizScreen) View(width, height int) string {
	sc := s.sess.Scene()

	var body string
	switch {
	case sc.Overlay != scene.OverlayNone:
		body = s.renderOverlay(sc, width)
	case sc.Visible(choreo.TargetResultScreen):
		body = s.renderResult(sc, width)
	case sc.Visible(choreo.TargetQuestionScreen):
		body = s.renderQuestion(sc, width)
	default:
		body = s.renderStart(width)
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *QuizScreen) renderStart(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Which plant are you?")))
	b.WriteString("\n\n")
	intro := fmt.Sprintf("%d questions. No right answers.\nFollow the path and see where the forest takes you.",
		s.sess.Quiz().Len())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(intro)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Enter to step in")))
	return b.String()
}

func (s *QuizScreen) renderQuestion(sc *scene.Scene, width int) string {
	inner := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderCanopy(sc, inner, layout.IsCompactWidth(width)))
	b.WriteString("\n\n")

	card := sc.Element(choreo.TargetQuestionCard)
	_, n, _ := s.sess.Displayed()

	prompt := theme.Body
	switch {
	case card.Exiting:
		prompt = theme.Exiting
	case card.Entering:
		prompt = theme.Entering
	}

	var cb strings.Builder
	cb.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d", n)))
	cb.WriteString("\n\n")
	cb.WriteString(prompt.Width(inner - 4).Render(card.Text))
	cb.WriteString("\n\n")
	cb.WriteString(s.choices.View(card.Exiting))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(inner).Render(cb.String())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTrail(sc, inner)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBanners(sc)))
	return b.String()
}

// renderCanopy draws the depth backdrop as a tinted strip. During a
// crossfade the next stage is shown beside the current one. The compact
// strip leaves out the zoom step.
func (s *QuizScreen) renderCanopy(sc *scene.Scene, width int, compact bool) string {
	bd := sc.Backdrop
	label := stageNames[bd.Stage]
	if bd.Zoom > 0 && !compact {
		label += fmt.Sprintf("  ·  step %d", bd.Zoom)
	}

	strip := lipgloss.NewStyle().
		Background(theme.StageColor(int(bd.Stage))).
		Foreground(theme.BgDark).
		Width(width).
		Align(lipgloss.Center)
	if bd.Transitioning && bd.NextStage != 0 && bd.NextStage != bd.Stage {
		half := width / 2
		left := strip.Width(half).Render(stageNames[bd.Stage])
		right := strip.
			Background(theme.StageColor(int(bd.NextStage))).
			Foreground(theme.Text).
			Width(width - half).
			Render(stageNames[bd.NextStage] + " ›")
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return strip.Render(label)
}

func (s *QuizScreen) renderTrail(sc *scene.Scene, width int) string {
	marks := make([]float64, len(sc.Trail.Footprints))
	for i, fp := range sc.Trail.Footprints {
		marks[i] = fp.Position
	}
	return components.Trail{
		Percent:    sc.Trail.Fraction,
		Footprints: marks,
		Width:      width,
		Tint:       theme.StageColor(int(sc.Backdrop.Stage)),
	}.View()
}

func renderBanners(sc *scene.Scene) string {
	var lines []string
	if fb := sc.Element(choreo.TargetFeedback); fb.Visible && fb.Text != "" {
		lines = append(lines, theme.Banner.Render(fb.Text))
	}
	if in := sc.Element(choreo.TargetInsight); in.Visible && in.Text != "" {
		lines = append(lines, theme.Insight.Render("✦ "+in.Text))
	}
	// Keep the layout stable when no banner is up.
	for len(lines) < 2 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (s *QuizScreen) renderOverlay(sc *scene.Scene, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.AccentColor(sc.Accent)).
		Bold(true)
	text := "The forest is listening..."
	if sc.Overlay == scene.OverlayFading {
		style = theme.Hint
		text = "..."
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}

func (s *QuizScreen) renderResult(sc *scene.Scene, width int) string {
	res := s.sess.Result()
	if res == nil {
		return ""
	}
	accent := theme.AccentColor(sc.Accent)
	inner := components.ContentWidth(width)
	p := res.Profile

	var b strings.Builder
	section := func(t choreo.Target, render func() string) {
		if !sc.Element(t).Revealed {
			return
		}
		b.WriteString(render())
		b.WriteString("\n")
	}

	section(choreo.TargetResultIcon, func() string {
		return sc.Element(choreo.TargetResultIcon).Text
	})
	section(choreo.TargetResultName, func() string {
		name := lipgloss.NewStyle().Foreground(accent).Bold(true).
			Render(sc.Element(choreo.TargetResultName).Text)
		if match := sc.Element(choreo.TargetResultMatch).Text; match != "" {
			name += theme.Hint.Render("  " + match + " of your path")
		}
		return name
	})
	section(choreo.TargetResultTagline, func() string {
		return theme.Subtitle.Render(sc.Element(choreo.TargetResultTagline).Text) + "\n"
	})
	section(choreo.TargetResultDescription, func() string {
		return theme.Body.Width(inner - 4).
			Render(sc.Element(choreo.TargetResultDescription).Text) + "\n"
	})
	section(choreo.TargetResultCoord, func() string {
		return lipgloss.NewStyle().Foreground(accent).Render(p.Field) +
			theme.Hint.Render(fmt.Sprintf("  (%d, %d)", p.Coord.X, p.Coord.Y)) + "\n" +
			theme.Body.Render(p.FieldDesc) + "\n"
	})
	section(choreo.TargetResultRelationships, func() string {
		return renderRelations(p) + "\n" + renderBreakdown(res)
	})
	section(choreo.TargetResultScents, func() string {
		return theme.Hint.Render("Similar  ") + theme.Body.Render(p.Similar.Name+": "+p.Similar.Text) + "\n" +
			theme.Hint.Render("Balance  ") + theme.Body.Render(p.Balance.Name+": "+p.Balance.Text)
	})

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(inner).
		Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderRelations(p content.Profile) string {
	var b strings.Builder
	for _, role := range content.AllRoles() {
		rel, ok := p.Relations[role]
		if !ok {
			continue
		}
		names := make([]string, len(rel.Plants))
		for i, c := range rel.Plants {
			names[i] = plantName(c)
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%-16s", role.DisplayName())))
		b.WriteString(theme.Selected.Render(strings.Join(names, ", ")))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(rel.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBreakdown(res *session.Result) string {
	var parts []string
	for _, sh := range res.Breakdown() {
		parts = append(parts, fmt.Sprintf("%s %d", plantName(sh.Category), sh.Count))
	}
	return theme.Hint.Render("Your answers: " + strings.Join(parts, " · "))
}

func plantName(c quiz.Category) string {
	if p, ok := content.ProfileFor(c); ok {
		return p.Name
	}
	return c.String()
}
