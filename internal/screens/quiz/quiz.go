package quiz

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/plantquiz/internal/choreo"
	"github.com/abhisek/plantquiz/internal/feedback"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/router"
	"github.com/abhisek/plantquiz/internal/screen"
	"github.com/abhisek/plantquiz/internal/session"
	"github.com/abhisek/plantquiz/internal/ui/components"
	"github.com/abhisek/plantquiz/internal/ui/layout"
)

// Options holds the quiz screen's dependencies.
type Options struct {
	Quiz     *quiz.Quiz
	Timings  *choreo.Timings
	Journal  session.Journal
	Feedback *feedback.Selector
	Logger   *zap.Logger
}

// QuizScreen runs one quiz from the start screen through the result.
type QuizScreen struct {
	sess     *session.Session
	sched    *tickScheduler
	choices  components.Choices
	boundFor int // question number the choices were built for
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.DepthProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. It fails only when the options cannot form a
// session.
func New(opts Options) (*QuizScreen, error) {
	sched := newTickScheduler()
	sess, err := session.New(session.Options{
		Quiz:      opts.Quiz,
		Scheduler: sched,
		Timings:   opts.Timings,
		Feedback:  opts.Feedback,
		Journal:   opts.Journal,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz screen: %w", err)
	}
	return &QuizScreen{sess: sess, sched: sched}, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	switch s.sess.Phase() {
	case session.PhaseResult, session.PhaseRevealing:
		return "Your Plant"
	default:
		return "Into the Forest"
	}
}

func (s *QuizScreen) Status() string {
	if s.sess.Phase() != session.PhaseQuestion {
		return ""
	}
	_, n, _ := s.sess.Displayed()
	return fmt.Sprintf("Q %d/%d", n, s.sess.Quiz().Len())
}

// Depth tints the frame with the backdrop stage while questions are shown.
func (s *QuizScreen) Depth() (int, float64) {
	if s.sess.Phase() != session.PhaseQuestion {
		return 0, 0
	}
	sc := s.sess.Scene()
	return int(sc.Backdrop.Stage), sc.Trail.Fraction
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.sess.Phase() {
	case session.PhaseStart:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case session.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Choose"},
		}
	case session.PhaseResult:
		return []layout.KeyHint{
			{Key: "R", Description: "Again"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if !s.sched.Fire(msg) {
			return s, nil
		}
		s.syncChoices()
		return s, s.sched.Drain()

	case tea.KeyPressMsg:
		cmd := s.handleKey(msg)
		s.syncChoices()
		return s, tea.Batch(cmd, s.sched.Drain())
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.errMsg != "" {
		s.errMsg = ""
		return nil
	}

	switch s.sess.Phase() {
	case session.PhaseStart:
		switch {
		case key.Matches(msg, components.Keys.Select):
			if err := s.sess.Start(); err != nil {
				s.errMsg = err.Error()
			}
		case key.Matches(msg, components.Keys.Back):
			return popScreen
		}

	case session.PhaseQuestion:
		// The card is locked while it moves.
		if s.sess.Busy() {
			return nil
		}
		var picked int
		s.choices, picked = s.choices.Update(msg)
		if picked < 0 {
			return nil
		}
		if _, err := s.sess.Answer(picked); err != nil && !errors.Is(err, session.ErrBusy) {
			s.errMsg = err.Error()
		}

	case session.PhaseResult:
		switch {
		case key.Matches(msg, components.Keys.Restart):
			if err := s.sess.Restart(); err != nil && !errors.Is(err, session.ErrBusy) {
				s.errMsg = err.Error()
			}
		case key.Matches(msg, components.Keys.Back):
			return popScreen
		}
	}
	return nil
}

// syncChoices rebuilds the option list when a new question is bound.
func (s *QuizScreen) syncChoices() {
	q, n, ok := s.sess.Displayed()
	if !ok || s.sess.Phase() == session.PhaseStart {
		s.boundFor = 0
		return
	}
	if n == s.boundFor {
		return
	}
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label
	}
	s.choices = components.NewChoices(labels)
	s.boundFor = n
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}
