package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/plantquiz/internal/choreo"
	"github.com/abhisek/plantquiz/internal/config"
	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/feedback"
	"github.com/abhisek/plantquiz/internal/quiz"
	"github.com/abhisek/plantquiz/internal/store"
)

const turn = time.Second // leave + enter with default timings

type fakeJournal struct {
	records []store.ResultRecord
	err     error
}

func (f *fakeJournal) Append(_ context.Context, rec store.ResultRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

// testQuiz returns n questions whose options are every category in
// declaration order, so option index i answers quiz.Category(i).
func testQuiz(t *testing.T, n int) *quiz.Quiz {
	t.Helper()
	var opts []quiz.Option
	for _, c := range quiz.AllCategories() {
		opts = append(opts, quiz.Option{Label: c.String(), Category: c})
	}
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{Prompt: "question " + string(rune('A'+i)), Options: opts}
	}
	q, err := quiz.New(qs)
	require.NoError(t, err)
	return q
}

func newTestSession(t *testing.T, n int, journal Journal) (*Session, *choreo.VirtualClock) {
	t.Helper()
	clock := choreo.NewVirtualClock()
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s, err := New(Options{
		Quiz:      testQuiz(t, n),
		Scheduler: clock,
		Feedback:  feedback.New(rand.NewPCG(1, 2)),
		Journal:   journal,
		Now:       func() time.Time { return start.Add(clock.Now()) },
		NewID:     func() string { return "session-1" },
	})
	require.NoError(t, err)
	return s, clock
}

func answer(t *testing.T, s *Session, clock *choreo.VirtualClock, c quiz.Category) Outcome {
	t.Helper()
	out, err := s.Answer(int(c))
	require.NoError(t, err)
	clock.Advance(turn)
	return out
}

func TestNewRequiresQuizAndScheduler(t *testing.T) {
	_, err := New(Options{Scheduler: choreo.NewVirtualClock()})
	assert.Error(t, err)
	_, err = New(Options{Quiz: testQuiz(t, 1)})
	assert.Error(t, err)
}

func TestAnswerBeforeStart(t *testing.T) {
	s, _ := newTestSession(t, 3, nil)
	_, err := s.Answer(0)
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Equal(t, PhaseStart, s.Phase())
}

func TestStartShowsFirstQuestion(t *testing.T) {
	s, _ := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())

	assert.Equal(t, PhaseQuestion, s.Phase())
	assert.Equal(t, "session-1", s.SessionID())
	q, n, ok := s.Displayed()
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, "question A", q.Prompt)

	sc := s.Scene()
	assert.False(t, sc.Visible(choreo.TargetStartScreen))
	assert.True(t, sc.Visible(choreo.TargetQuestionScreen))
	assert.Equal(t, "question A", sc.Element(choreo.TargetQuestionCard).Text)
	assert.Equal(t, 1, sc.Backdrop.Zoom)

	assert.ErrorIs(t, s.Start(), ErrWrongPhase)
}

func TestAnswerInvalidOption(t *testing.T) {
	s, _ := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())
	_, err := s.Answer(quiz.NumCategories)
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = s.Answer(-1)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, 0, s.Progress().Index)
}

func TestAnswerRejectedWhileTransitioning(t *testing.T) {
	s, clock := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())

	_, err := s.Answer(int(quiz.Mint))
	require.NoError(t, err)
	assert.True(t, s.Busy())

	_, err = s.Answer(int(quiz.Peony))
	assert.ErrorIs(t, err, ErrBusy)
	clock.Advance(600 * time.Millisecond)
	_, err = s.Answer(int(quiz.Peony))
	assert.ErrorIs(t, err, ErrBusy)

	assert.Equal(t, 1, s.Progress().Index)
	assert.Equal(t, 1, s.Progress().Tally.Get(quiz.Mint))
	assert.Equal(t, 0, s.Progress().Tally.Get(quiz.Peony))

	clock.Advance(400 * time.Millisecond)
	assert.False(t, s.Busy())
	_, err = s.Answer(int(quiz.Peony))
	assert.NoError(t, err)
}

func TestBusyAnswerLeavesSessionUntouched(t *testing.T) {
	s, clock := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())
	require.True(t, s.Choreographer().Transition.Begin(choreo.TransitionRequest{
		Outgoing: choreo.TargetQuestionCard,
		Incoming: choreo.TargetQuestionCard,
	}))

	_, err := s.Answer(int(quiz.Cypress))
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 0, s.Progress().Index)
	assert.Zero(t, s.Scene().Trail.Fraction)
	assert.Empty(t, s.Scene().Element(choreo.TargetFeedback).Text)

	clock.RunAll()
	_, n, _ := s.Displayed()
	assert.Equal(t, 1, n, "the card stays on the unanswered question")
}

func TestDisplayedSwitchesWhenCardLeaves(t *testing.T) {
	s, clock := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())

	_, err := s.Answer(0)
	require.NoError(t, err)

	_, n, _ := s.Displayed()
	assert.Equal(t, 1, n, "card still shows the answered question while leaving")
	assert.Equal(t, 2, s.QuestionNumber())

	clock.Advance(500 * time.Millisecond)
	q, n, _ := s.Displayed()
	assert.Equal(t, 2, n)
	assert.Equal(t, "question B", q.Prompt)
	assert.Equal(t, "question B", s.Scene().Element(choreo.TargetQuestionCard).Text)
	assert.True(t, s.Scene().Element(choreo.TargetQuestionCard).Entering)

	clock.Advance(500 * time.Millisecond)
	assert.False(t, s.Scene().Element(choreo.TargetQuestionCard).Entering)
}

func TestFeedbackAndInsight(t *testing.T) {
	s, clock := newTestSession(t, 5, nil)
	require.NoError(t, s.Start())

	pool := feedback.DefaultPools()[quiz.Hinoki]
	out := answer(t, s, clock, quiz.Hinoki)
	assert.Contains(t, pool, out.Feedback)
	assert.Empty(t, out.Insight)
	assert.Equal(t, quiz.Hinoki, out.Answered)

	answer(t, s, clock, quiz.Hinoki)
	out = answer(t, s, clock, quiz.Hinoki)
	assert.Equal(t, feedback.DefaultInsights()[3], out.Insight)

	// Shown at 2s, hidden at 5s, blanked at 5.3s.
	assert.True(t, s.Scene().Visible(choreo.TargetInsight))
	clock.Advance(3 * time.Second)
	assert.False(t, s.Scene().Visible(choreo.TargetInsight))
	assert.Empty(t, s.Scene().Element(choreo.TargetInsight).Text)
}

func TestBackdropFollowsQuestions(t *testing.T) {
	s, clock := newTestSession(t, 10, nil)
	require.NoError(t, s.Start())

	for range 3 {
		answer(t, s, clock, quiz.Lavender)
	}
	// Question 4 is bound now; its crossfade settles 2s later.
	sc := s.Scene()
	assert.Equal(t, 4, sc.Backdrop.Zoom)
	assert.True(t, sc.Backdrop.Transitioning)
	assert.Equal(t, choreo.StageEntrance, sc.Backdrop.Stage)

	clock.Advance(2 * time.Second)
	assert.Equal(t, choreo.StageMid, sc.Backdrop.Stage)
	assert.False(t, sc.Backdrop.Transitioning)
	assert.Len(t, sc.Trail.Footprints, 3)
	assert.InDelta(t, 0.3, sc.Trail.Fraction, 1e-9)
}

func TestCompleteRun(t *testing.T) {
	journal := &fakeJournal{}
	s, clock := newTestSession(t, 10, journal)
	require.NoError(t, s.Start())

	var last Outcome
	for range 10 {
		last = answer(t, s, clock, quiz.Peony)
	}
	require.True(t, last.Completed)
	require.NotNil(t, last.Result)
	assert.Equal(t, quiz.Peony, last.Result.Category)
	assert.Equal(t, 10, last.Result.Tally.Get(quiz.Peony))
	assert.Equal(t, 10, last.Result.Tally.Total())
	assert.Equal(t, quiz.StateCompleted, s.Quiz().State(s.Progress()))

	require.Len(t, journal.records, 1)
	rec := journal.records[0]
	assert.Equal(t, "session-1", rec.SessionID)
	assert.Equal(t, quiz.Peony, rec.Category)
	assert.Equal(t, 9*turn, rec.CompletedAt.Sub(rec.StartedAt))

	// The loop already advanced one turn past the final answer.
	assert.Equal(t, PhaseRevealing, s.Phase())
	assert.True(t, s.Busy())
	clock.RunAll()
	assert.Equal(t, PhaseResult, s.Phase())

	profile, _ := content.ProfileFor(quiz.Peony)
	sc := s.Scene()
	assert.True(t, sc.Visible(choreo.TargetResultScreen))
	assert.False(t, sc.Visible(choreo.TargetQuestionScreen))
	assert.Equal(t, profile.Accent, sc.Accent)
	assert.Equal(t, profile.Name, sc.Element(choreo.TargetResultName).Text)
	for _, section := range choreo.ResultSections() {
		assert.True(t, sc.Element(section).Revealed, section)
	}
	assert.Equal(t, "100%", sc.Element(choreo.TargetResultMatch).Text)

	_, err := s.Answer(0)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestTieGoesToFirstDeclared(t *testing.T) {
	s, clock := newTestSession(t, 4, nil)
	require.NoError(t, s.Start())
	for _, c := range []quiz.Category{quiz.Cypress, quiz.Lavender, quiz.Cypress, quiz.Lavender} {
		answer(t, s, clock, c)
	}
	require.NotNil(t, s.Result())
	assert.Equal(t, quiz.Lavender, s.Result().Category)
}

func TestJournalFailureDoesNotBlock(t *testing.T) {
	journal := &fakeJournal{err: errors.New("disk full")}
	s, clock := newTestSession(t, 2, journal)
	require.NoError(t, s.Start())

	answer(t, s, clock, quiz.Mint)
	out := answer(t, s, clock, quiz.Mint)
	assert.True(t, out.Completed)
	clock.RunAll()
	assert.Equal(t, PhaseResult, s.Phase())
}

func TestRestart(t *testing.T) {
	s, clock := newTestSession(t, 8, nil)
	require.NoError(t, s.Start())

	for range 7 {
		answer(t, s, clock, quiz.Chamomile)
	}
	_, err := s.Answer(int(quiz.Mint))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Restart(), ErrBusy, "reveal in flight")

	clock.Advance(2600 * time.Millisecond)
	require.NoError(t, s.Restart())
	clock.RunAll()

	assert.Equal(t, PhaseStart, s.Phase())
	assert.Nil(t, s.Result())
	assert.Equal(t, quiz.Progress{}, s.Progress())

	sc := s.Scene()
	assert.True(t, sc.Visible(choreo.TargetStartScreen))
	assert.False(t, sc.Visible(choreo.TargetResultScreen))
	assert.Equal(t, choreo.StageEntrance, sc.Backdrop.Stage)
	assert.Zero(t, sc.Backdrop.Zoom)
	assert.Empty(t, sc.Trail.Footprints)
	assert.Empty(t, sc.Accent)
	for _, section := range choreo.ResultSections() {
		assert.False(t, sc.Element(section).Revealed, section)
	}

	require.NoError(t, s.Start())
	assert.Equal(t, PhaseQuestion, s.Phase())
}

func TestRestartRejectedMidTransition(t *testing.T) {
	s, clock := newTestSession(t, 3, nil)
	require.NoError(t, s.Start())
	_, err := s.Answer(0)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Restart(), ErrBusy)
	clock.Advance(turn)
	assert.NoError(t, s.Restart())
}

func TestResultBreakdown(t *testing.T) {
	var tally quiz.Tally
	tally[quiz.Peony] = 1
	tally[quiz.Hinoki] = 2
	tally[quiz.Lavender] = 2
	r := &Result{Tally: tally}

	got := r.Breakdown()
	require.Len(t, got, 3)
	assert.Equal(t, quiz.Lavender, got[0].Category)
	assert.Equal(t, quiz.Hinoki, got[1].Category)
	assert.Equal(t, quiz.Peony, got[2].Category)
	assert.InDelta(t, 0.4, got[0].Fraction, 1e-9)

	r.Category = quiz.Hinoki
	assert.Equal(t, 40, r.Match())
	assert.Equal(t, 0, (&Result{Category: quiz.Mint}).Match())
}

func TestZeroTimingsAreHonored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timings = config.TimingsConfig{
		Leave: "0s", Enter: "0s", Settle: "0s",
		OverlayDwell: "0s", OverlayFade: "0s", Stagger: "0s",
		FeedbackHold: "0s", InsightHold: "0s", InsightClear: "0s",
		CountUp: "0s",
	}
	timings, err := cfg.ChoreoTimings()
	require.NoError(t, err)

	clock := choreo.NewVirtualClock()
	s, err := New(Options{Quiz: testQuiz(t, 2), Scheduler: clock, Timings: &timings})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	_, err = s.Answer(int(quiz.Mint))
	require.NoError(t, err)
	clock.Advance(0)

	assert.False(t, s.Busy(), "zero timings finish the transition without waiting")
	_, n, _ := s.Displayed()
	assert.Equal(t, 2, n)
}
