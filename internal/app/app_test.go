package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/ui/layout"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	q, err := content.Default().Quiz()
	if err != nil {
		t.Fatalf("default quiz: %v", err)
	}
	return Options{Quiz: q, SkipWelcome: true}
}

func TestAppStartsOnHome(t *testing.T) {
	m := newAppModel(testOptions(t))
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active = %q, want Home", got)
	}
}

func TestAppStartsOnWelcome(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = false
	m := newAppModel(opts)
	if got := m.router.Active().Title(); got != "" {
		t.Errorf("active = %q, want the welcome screen", got)
	}
}

func TestAppEscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestAppHeaderShowsQuestionCounter(t *testing.T) {
	m := newAppModel(testOptions(t))
	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// Home -> quiz screen.
	_, cmd := model.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	model, _ = model.Update(cmd())
	// Start screen -> first question.
	model, _ = model.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	app := model.(AppModel)
	sp, ok := app.router.Active().(screen.StatusProvider)
	if !ok {
		t.Fatal("quiz screen should provide a status")
	}
	if got := sp.Status(); got != "Q 1/10" {
		t.Errorf("status = %q, want Q 1/10", got)
	}
	c := app.chrome()
	if c.Status != "Q 1/10" || c.Stage != 1 {
		t.Errorf("chrome = %+v, want status Q 1/10 at stage 1", c)
	}
	if !strings.Contains(layout.RenderHeader(c, 120), "Q 1/10") {
		t.Error("header missing question counter")
	}

	// Esc leaves the walk.
	_, cmd = model.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
