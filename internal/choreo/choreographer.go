package choreo

import (
	"time"

	"go.uber.org/zap"
)

// Timings holds every fixed duration used by the choreography.
type Timings struct {
	Leave        time.Duration // outgoing question exit
	Enter        time.Duration // incoming question entry
	Settle       time.Duration // backdrop crossfade
	OverlayDwell time.Duration // result overlay before fading
	OverlayFade  time.Duration // result overlay fade-out
	Stagger      time.Duration // delay between result sections
	FeedbackHold time.Duration // answer reaction visible
	InsightHold  time.Duration // stage insight visible
	InsightClear time.Duration // stage insight text cleared after hiding
	CountUp      time.Duration // result match percentage roll-up
}

// DefaultTimings returns the reference durations.
func DefaultTimings() Timings {
	return Timings{
		Leave:        500 * time.Millisecond,
		Enter:        500 * time.Millisecond,
		Settle:       2000 * time.Millisecond,
		OverlayDwell: 2000 * time.Millisecond,
		OverlayFade:  500 * time.Millisecond,
		Stagger:      150 * time.Millisecond,
		FeedbackHold: 2000 * time.Millisecond,
		InsightHold:  3000 * time.Millisecond,
		InsightClear: 300 * time.Millisecond,
		CountUp:      1200 * time.Millisecond,
	}
}

// Choreographer groups the sequencers that share one scheduler and
// presenter.
type Choreographer struct {
	Timings    Timings
	Transition *Transitioner
	Backdrop   *Backdrop
	Reveal     *Revealer
	Announce   *Announcer
	Count      *Counter
}

// New wires a Choreographer.
func New(sched Scheduler, p Presenter, t Timings, log *zap.Logger) *Choreographer {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("choreo")
	return &Choreographer{
		Timings:    t,
		Transition: NewTransitioner(sched, p, t.Leave, t.Enter, log),
		Backdrop:   NewBackdrop(sched, p, t.Settle, log),
		Reveal:     NewRevealer(sched, p, t.OverlayDwell, t.OverlayFade, t.Stagger, ResultSections(), log),
		Announce:   NewAnnouncer(sched, p, log),
		Count:      NewCounter(sched, p, log),
	}
}

// Busy reports whether a question transition or reveal is in flight.
func (c *Choreographer) Busy() bool {
	return c.Transition.Busy() || c.Reveal.Busy()
}

// Feedback flashes an answer reaction.
func (c *Choreographer) Feedback(text string) {
	c.Announce.Flash(TargetFeedback, text, c.Timings.FeedbackHold, 0)
}

// Insight flashes a stage insight.
func (c *Choreographer) Insight(text string) {
	c.Announce.Flash(TargetInsight, text, c.Timings.InsightHold, c.Timings.InsightClear)
}

// ClearBanners blanks both banners.
func (c *Choreographer) ClearBanners() {
	c.Announce.Clear(TargetFeedback)
	c.Announce.Clear(TargetInsight)
}
