package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/plantquiz/internal/choreo"
	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/feedback"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/scene"
	"github.com/abhisek/plantquiz/internal/store"
)

const journalTimeout = 2 * time.Second

// Journal receives completed results. store.ResultRepo satisfies it.
type Journal interface {
	Append(ctx context.Context, rec store.ResultRecord) error
}

// Options configures a Session. Quiz and Scheduler are required.
type Options struct {
	Quiz      *quiz.Quiz
	Scheduler choreo.Scheduler

	// Timings defaults to choreo.DefaultTimings when nil. Zero durations
	// are honored.
	Timings *choreo.Timings

	// Feedback defaults to the built-in pools with a random seed.
	Feedback *feedback.Selector

	// Scene defaults to one with every quiz target mounted.
	Scene *scene.Scene

	// Journal is optional; failures are logged and never block the quiz.
	Journal Journal

	Logger *zap.Logger

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Outcome reports what a single answer produced.
type Outcome struct {
	Answered  quiz.Category
	Feedback  string
	Insight   string
	Completed bool
	Result    *Result
}

// Session drives one quiz: it owns the progress record and connects the
// scoring state machine, the feedback selector and the choreography.
// It is not safe for concurrent use; every call and every scheduled
// callback must run on the same goroutine.
type Session struct {
	quiz     *quiz.Quiz
	feedback *feedback.Selector
	choreo   *choreo.Choreographer
	scene    *scene.Scene
	journal  Journal
	log      *zap.Logger
	now      func() time.Time
	newID    func() string

	phase     Phase
	progress  quiz.Progress
	displayed int
	sessionID string
	startedAt time.Time
	result    *Result
}

// New creates a Session on the start screen.
func New(opts Options) (*Session, error) {
	if opts.Quiz == nil || opts.Quiz.Len() == 0 {
		return nil, fmt.Errorf("new session: quiz has no questions")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("new session: scheduler is required")
	}
	timings := choreo.DefaultTimings()
	if opts.Timings != nil {
		timings = *opts.Timings
	}
	if opts.Feedback == nil {
		opts.Feedback = feedback.New(nil)
	}
	if opts.Scene == nil {
		opts.Scene = scene.New(scene.DefaultTargets()...)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &Session{
		quiz:     opts.Quiz,
		feedback: opts.Feedback,
		choreo:   choreo.New(opts.Scheduler, opts.Scene, timings, opts.Logger),
		scene:    opts.Scene,
		journal:  opts.Journal,
		log:      opts.Logger.Named("session"),
		now:      opts.Now,
		newID:    opts.NewID,
		progress: opts.Quiz.Start(),
	}, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Progress returns a copy of the progress record.
func (s *Session) Progress() quiz.Progress { return s.progress }

// Quiz returns the question set.
func (s *Session) Quiz() *quiz.Quiz { return s.quiz }

// Scene returns the visual state the choreography writes to.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Choreographer exposes the sequencers, mostly for inspection.
func (s *Session) Choreographer() *choreo.Choreographer { return s.choreo }

// SessionID returns the ID of the running session, empty before Start.
func (s *Session) SessionID() string { return s.sessionID }

// Busy reports whether a transition or reveal is in flight.
func (s *Session) Busy() bool { return s.choreo.Busy() }

// QuestionNumber is the 1-based number of the current question.
func (s *Session) QuestionNumber() int { return s.quiz.QuestionNumber(s.progress) }

// Fraction is the share of questions answered.
func (s *Session) Fraction() float64 { return s.quiz.ProgressFraction(s.progress) }

// Displayed returns the question currently bound to the card and its
// 1-based number. During a transition this lags the progress record until
// the outgoing card has left.
func (s *Session) Displayed() (quiz.Question, int, bool) {
	q, err := s.quiz.Question(s.displayed)
	if err != nil {
		return quiz.Question{}, 0, false
	}
	return q, s.displayed + 1, true
}

// Result returns the result once the last answer is in, else nil.
func (s *Session) Result() *Result { return s.result }

// Start leaves the start screen and shows the first question.
func (s *Session) Start() error {
	if s.phase != PhaseStart {
		return fmt.Errorf("start: %w", ErrWrongPhase)
	}
	s.phase = PhaseQuestion
	s.sessionID = s.newID()
	s.startedAt = s.now()

	s.present(
		choreo.Effect{Op: choreo.OpHide, Target: choreo.TargetStartScreen},
		choreo.Effect{Op: choreo.OpShow, Target: choreo.TargetQuestionScreen},
		choreo.Effect{Op: choreo.OpShow, Target: choreo.TargetQuestionCard},
	)
	s.bindCurrent()
	s.choreo.Backdrop.Track(0, s.quiz.Len())

	s.log.Info("session started", zap.String("session_id", s.sessionID), zap.Int("questions", s.quiz.Len()))
	return nil
}

// Answer records the option at optionIndex of the current question.
func (s *Session) Answer(optionIndex int) (Outcome, error) {
	if s.phase != PhaseQuestion {
		return Outcome{}, fmt.Errorf("answer: %w", ErrWrongPhase)
	}
	if s.choreo.Busy() {
		return Outcome{}, ErrBusy
	}

	q, err := s.quiz.CurrentQuestion(s.progress)
	if err != nil {
		return Outcome{}, fmt.Errorf("answer: %w", err)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Outcome{}, fmt.Errorf("answer option %d of %d: %w", optionIndex, len(q.Options), ErrInvalidOption)
	}
	answered := q.Options[optionIndex].Category

	next, err := s.quiz.RecordAnswer(s.progress, answered)
	if err != nil {
		return Outcome{}, fmt.Errorf("answer: %w", err)
	}
	// The card leaves before anything is committed, so a rejected
	// transition leaves the session as it was.
	more := s.quiz.HasNext(next)
	if more && !s.choreo.Transition.Begin(choreo.TransitionRequest{
		Outgoing: choreo.TargetQuestionCard,
		Incoming: choreo.TargetQuestionCard,
		Update:   s.bindCurrent,
	}) {
		s.log.Warn("answer dropped, transition already running", zap.Int("question", next.Index))
		return Outcome{}, ErrBusy
	}
	s.progress = next

	out := Outcome{Answered: answered, Feedback: s.feedback.Pick(answered)}
	s.choreo.Feedback(out.Feedback)
	if text, ok := s.feedback.Insight(next.Index); ok {
		out.Insight = text
		s.choreo.Insight(text)
	}
	s.choreo.Backdrop.Track(next.Index, s.quiz.Len())

	s.log.Debug("answer recorded",
		zap.Int("question", next.Index),
		zap.Stringer("category", answered))

	if more {
		return out, nil
	}

	res, err := s.complete()
	if err != nil {
		return Outcome{}, err
	}
	out.Completed, out.Result = true, res
	return out, nil
}

// bindCurrent puts the question at the progress index on the card and
// moves the backdrop to match.
func (s *Session) bindCurrent() {
	s.displayed = s.progress.Index
	q, err := s.quiz.Question(s.displayed)
	if err != nil {
		return
	}
	s.present(choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetQuestionCard, Text: q.Prompt})
	s.choreo.Backdrop.Show(s.displayed + 1)
}

func (s *Session) complete() (*Result, error) {
	category, err := s.quiz.ComputeResult(s.progress)
	if err != nil {
		return nil, fmt.Errorf("compute result: %w", err)
	}
	profile, _ := content.ProfileFor(category)

	s.result = &Result{
		SessionID:   s.sessionID,
		Category:    category,
		Profile:     profile,
		Tally:       s.progress.Tally,
		StartedAt:   s.startedAt,
		CompletedAt: s.now(),
	}
	s.phase = PhaseRevealing
	s.log.Info("session completed",
		zap.String("session_id", s.sessionID),
		zap.Stringer("result", category),
		zap.Any("tally", s.progress.Tally.Map()))

	s.record(s.result)
	s.bindResult(profile)

	s.choreo.Reveal.Reveal(choreo.RevealRequest{
		Outgoing:  choreo.TargetQuestionScreen,
		Container: choreo.TargetResultScreen,
		Accent:    profile.Accent,
		Done: func() {
			s.phase = PhaseResult
			s.choreo.Count.CountUp(choreo.TargetResultMatch, s.result.Match(), s.choreo.Timings.CountUp,
				func(v int) string { return fmt.Sprintf("%d%%", v) })
		},
	})
	return s.result, nil
}

func (s *Session) bindResult(p content.Profile) {
	s.present(
		choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetResultIcon, Text: p.Icon},
		choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetResultName, Text: p.Name},
		choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetResultTagline, Text: p.Tagline},
		choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetResultDescription, Text: p.Description},
		choreo.Effect{Op: choreo.OpSetText, Target: choreo.TargetResultCoord, Text: p.Field},
	)
}

func (s *Session) record(res *Result) {
	if s.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	err := s.journal.Append(ctx, store.ResultRecord{
		SessionID:   res.SessionID,
		Category:    res.Category,
		Tally:       res.Tally,
		StartedAt:   res.StartedAt,
		CompletedAt: res.CompletedAt,
	})
	if err != nil {
		s.log.Warn("journal append failed", zap.String("session_id", res.SessionID), zap.Error(err))
	}
}

// Restart returns to the start screen with fresh progress, feedback cycles
// and backdrop. It fails with ErrBusy while a transition or reveal is in
// flight.
func (s *Session) Restart() error {
	if s.choreo.Busy() {
		return ErrBusy
	}
	s.progress = s.quiz.Reset(s.progress)
	s.feedback.Reset()
	s.scene.Reset()
	s.choreo.Backdrop.Reset()
	s.choreo.ClearBanners()
	s.choreo.Reveal.Conceal(choreo.TargetResultScreen)
	s.choreo.Count.Stop(choreo.TargetResultMatch)
	s.present(
		choreo.Effect{Op: choreo.OpShow, Target: choreo.TargetStartScreen},
		choreo.Effect{Op: choreo.OpHide, Target: choreo.TargetQuestionScreen},
	)

	s.phase = PhaseStart
	s.displayed = 0
	s.result = nil
	s.sessionID = ""
	s.log.Info("session reset")
	return nil
}

// present applies effects outside the timed sequences.
func (s *Session) present(effects ...choreo.Effect) {
	for _, e := range effects {
		if err := s.scene.Apply(e); err != nil {
			s.log.Debug("skip effect", zap.Stringer("op", e.Op), zap.Error(err))
		}
	}
}
