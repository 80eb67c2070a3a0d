package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/plantquiz/internal/feedback"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T, n int) *QuizScreen {
	t.Helper()
	var opts []quiz.Option
	for _, c := range quiz.AllCategories() {
		opts = append(opts, quiz.Option{Label: "be " + c.String(), Category: c})
	}
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{Prompt: "prompt " + string(rune('A'+i)), Options: opts}
	}
	q, err := quiz.New(qs)
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	s, err := New(Options{Quiz: q, Feedback: feedback.New(rand.NewPCG(1, 2))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// flush fires every outstanding timer in scheduling order, including ones
// scheduled by the callbacks themselves.
func flush(t *testing.T, s *QuizScreen) {
	t.Helper()
	for i := 0; s.sched.Outstanding() > 0; i++ {
		if i > 1000 {
			t.Fatal("timers never settled")
		}
		next := -1
		for id := range s.sched.fns {
			if next < 0 || id < next {
				next = id
			}
		}
		s.Update(timerFiredMsg{owner: s.sched, id: next})
	}
}

func TestQuizScreen_StartScreen(t *testing.T) {
	s := newTestScreen(t, 3)
	if s.sess.Phase() != session.PhaseStart {
		t.Fatalf("phase = %v, want start", s.sess.Phase())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Which plant are you?") {
		t.Errorf("start view missing title:\n%s", view)
	}
	if s.Status() != "" {
		t.Errorf("Status = %q before start, want empty", s.Status())
	}
}

func TestQuizScreen_EscOnStartPops(t *testing.T) {
	s := newTestScreen(t, 3)
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg")
	}
}

func TestQuizScreen_AnswerLocksUntilTransitionEnds(t *testing.T) {
	s := newTestScreen(t, 3)
	s.Update(specialKey(tea.KeyEnter))
	if got := s.Status(); got != "Q 1/3" {
		t.Fatalf("Status = %q, want Q 1/3", got)
	}
	if !strings.Contains(s.View(100, 30), "prompt A") {
		t.Error("first question not shown")
	}

	_, cmd := s.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("answer should start timers")
	}
	if !s.sess.Busy() {
		t.Fatal("session should be busy mid-transition")
	}

	// Ignored while the card moves.
	s.Update(keyPress('3'))
	if got := s.sess.Progress().Index; got != 1 {
		t.Errorf("answered = %d, want 1", got)
	}
	if got := s.Status(); got != "Q 1/3" {
		t.Errorf("Status = %q mid-transition, want Q 1/3", got)
	}

	flush(t, s)
	if got := s.Status(); got != "Q 2/3" {
		t.Errorf("Status = %q after transition, want Q 2/3", got)
	}
	if s.choices.Selected != 0 || s.boundFor != 2 {
		t.Errorf("choices not rebound: selected=%d boundFor=%d", s.choices.Selected, s.boundFor)
	}
}

func TestQuizScreen_NavigateAndSelect(t *testing.T) {
	s := newTestScreen(t, 2)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	flush(t, s)

	if got := s.sess.Progress().Tally.Get(quiz.Hinoki); got != 1 {
		t.Errorf("hinoki tally = %d, want 1", got)
	}
}

func TestQuizScreen_FullRunAndRestart(t *testing.T) {
	s := newTestScreen(t, 3)
	s.Update(specialKey(tea.KeyEnter))
	for range 3 {
		s.Update(keyPress('6'))
		flush(t, s)
	}

	if s.sess.Phase() != session.PhaseResult {
		t.Fatalf("phase = %v, want result", s.sess.Phase())
	}
	if s.Title() != "Your Plant" {
		t.Errorf("Title = %q", s.Title())
	}
	view := s.View(100, 40)
	for _, want := range []string{"Peony", "Radiance Field", "Light of Dawn"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	s.Update(keyPress('r'))
	if s.sess.Phase() != session.PhaseStart {
		t.Fatalf("phase after restart = %v, want start", s.sess.Phase())
	}
	if !strings.Contains(s.View(100, 30), "Which plant are you?") {
		t.Error("restart did not return to the start screen")
	}
}

func TestQuizScreen_KeysIgnoredWhileRevealing(t *testing.T) {
	s := newTestScreen(t, 1)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('1'))
	if s.sess.Phase() != session.PhaseRevealing {
		t.Fatalf("phase = %v, want revealing", s.sess.Phase())
	}
	s.Update(keyPress('r'))
	if s.sess.Phase() != session.PhaseRevealing {
		t.Errorf("restart accepted mid-reveal")
	}
	if !strings.Contains(s.View(100, 30), "The forest is listening") {
		t.Error("overlay not shown during reveal")
	}
}

func TestQuizScreen_ForeignTimerIgnored(t *testing.T) {
	s := newTestScreen(t, 2)
	other := newTickScheduler()
	fired := false
	other.After(0, func() { fired = true })

	_, cmd := s.Update(timerFiredMsg{owner: other, id: 1})
	if cmd != nil || fired {
		t.Error("timer from another screen should be ignored")
	}
}

func TestTickScheduler_DrainClearsQueue(t *testing.T) {
	ts := newTickScheduler()
	if ts.Drain() != nil {
		t.Error("empty drain should return nil")
	}
	ts.After(0, func() {})
	ts.After(-5, func() {})
	if ts.Drain() == nil {
		t.Fatal("drain should return a command")
	}
	if len(ts.pending) != 0 {
		t.Errorf("pending = %d after drain", len(ts.pending))
	}
	if ts.Outstanding() != 2 {
		t.Errorf("Outstanding = %d, want 2", ts.Outstanding())
	}
}

func TestQuizScreen_DepthFollowsTrail(t *testing.T) {
	s := newTestScreen(t, 3)
	if stage, progress := s.Depth(); stage != 0 || progress != 0 {
		t.Errorf("Depth before start = (%d, %v), want (0, 0)", stage, progress)
	}

	s.Update(specialKey(tea.KeyEnter))
	if stage, _ := s.Depth(); stage != 1 {
		t.Errorf("stage on first question = %d, want 1", stage)
	}

	s.Update(keyPress('1'))
	flush(t, s)
	if _, progress := s.Depth(); progress < 0.33 || progress > 0.34 {
		t.Errorf("progress after one answer = %v, want 1/3", progress)
	}
}
