package home

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/store"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	records []store.ResultRecord
	err     error
}

func (f *fakeRepo) Append(_ context.Context, rec store.ResultRecord) error {
	f.records = append([]store.ResultRecord{rec}, f.records...)
	return nil
}

func (f *fakeRepo) Recent(_ context.Context, limit int) ([]store.ResultRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeRepo) Counts(context.Context) (map[quiz.Category]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[quiz.Category]int)
	for _, r := range f.records {
		out[r.Category]++
	}
	return out, nil
}

func (f *fakeRepo) Clear(context.Context) (int64, error) {
	n := int64(len(f.records))
	f.records = nil
	return n, nil
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func load(t *testing.T, h *HomeScreen) {
	t.Helper()
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a stats command")
	}
	h.Update(cmd())
}

func TestHomeStatsDigest(t *testing.T) {
	repo := &fakeRepo{records: []store.ResultRecord{
		{Category: quiz.Mint, CompletedAt: now.Add(-time.Hour)},
		{Category: quiz.Peony, CompletedAt: now.Add(-48 * time.Hour)},
		{Category: quiz.Peony, CompletedAt: now.Add(-72 * time.Hour)},
	}}
	h := New(Options{Results: repo, Now: func() time.Time { return now }})
	load(t, h)

	if h.stats.runs != 3 {
		t.Errorf("runs = %d, want 3", h.stats.runs)
	}
	if h.stats.last != "MINT" || h.stats.favorite != "PEONY" {
		t.Errorf("last=%q favorite=%q", h.stats.last, h.stats.favorite)
	}
	if h.mascot() != MascotBloom {
		t.Errorf("mascot = %v, want bloom", h.mascot())
	}
	if !strings.Contains(h.View(120, 40), "3 WALKS") {
		t.Error("stats bar missing walk count")
	}
}

func TestHomeStatsError(t *testing.T) {
	h := New(Options{Results: &fakeRepo{err: errors.New("locked")}})
	load(t, h)
	if !h.stats.unavailable {
		t.Error("expected stats to be marked unavailable")
	}
}

func TestHomeWithoutJournal(t *testing.T) {
	h := New(Options{})
	if h.Init() != nil {
		t.Error("no journal should mean no stats command")
	}
	if !h.menu.Items[1].Disabled {
		t.Error("history should be disabled without a journal")
	}
	if h.mascot() != MascotSeedling {
		t.Errorf("mascot = %v, want seedling", h.mascot())
	}
}

func TestHomeStartPushesQuiz(t *testing.T) {
	h := New(Options{NewQuiz: func() (screen.Screen, error) { return &stubScreen{}, nil }})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Quiz" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}

func TestHomeStartError(t *testing.T) {
	h := New(Options{NewQuiz: func() (screen.Screen, error) { return nil, errors.New("bad bank") }})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("no screen should be pushed on error")
	}
	if !strings.Contains(h.View(120, 40), "bad bank") {
		t.Error("error not shown")
	}
}

func TestHomeRefreshReloads(t *testing.T) {
	repo := &fakeRepo{}
	h := New(Options{Results: repo, Now: func() time.Time { return now }})
	load(t, h)
	if h.stats.runs != 0 {
		t.Fatalf("runs = %d, want 0", h.stats.runs)
	}

	_ = repo.Append(context.Background(), store.ResultRecord{Category: quiz.Cypress, CompletedAt: now})
	h.Update(h.Refresh()())
	if h.stats.runs != 1 || h.stats.last != "CYPRESS" {
		t.Errorf("after refresh: runs=%d last=%q", h.stats.runs, h.stats.last)
	}
}
