package choreo

import (
	"time"

	"go.uber.org/zap"
)

// Phase is the state of the question transition.
type Phase int

const (
	PhaseIdle     Phase = iota // lock free
	PhaseLeaving               // outgoing card exiting
	PhaseEntering              // incoming card entering
)

func (p Phase) String() string {
	switch p {
	case PhaseLeaving:
		return "leaving"
	case PhaseEntering:
		return "entering"
	default:
		return "idle"
	}
}

// TransitionRequest describes one question-to-question switch.
type TransitionRequest struct {
	Outgoing Target
	Incoming Target

	// Update binds the next question's content. It runs exactly once,
	// after the outgoing card is hidden and before the incoming one enters.
	Update func()

	// Done runs when the lock is released.
	Done func()
}

type trigger int

const (
	triggerBegin trigger = iota
	triggerLeft
	triggerEntered
)

// step is the transition table: given the current phase and a trigger it
// returns the next phase and the effects to apply on entering it. ok is
// false when the trigger is not valid in that phase.
func step(p Phase, tr trigger, req TransitionRequest) (next Phase, effects []Effect, ok bool) {
	switch {
	case p == PhaseIdle && tr == triggerBegin:
		return PhaseLeaving, []Effect{
			{Op: OpMarkExiting, Target: req.Outgoing},
		}, true
	case p == PhaseLeaving && tr == triggerLeft:
		return PhaseEntering, []Effect{
			{Op: OpHide, Target: req.Outgoing},
			{Op: OpClearExiting, Target: req.Outgoing},
		}, true
	case p == PhaseEntering && tr == triggerEntered:
		return PhaseIdle, []Effect{
			{Op: OpClearEntering, Target: req.Incoming},
		}, true
	}
	return p, nil, false
}

// enterEffects run after the content update, once the phase is Entering.
func enterEffects(req TransitionRequest) []Effect {
	return []Effect{
		{Op: OpShow, Target: req.Incoming},
		{Op: OpMarkEntering, Target: req.Incoming},
	}
}

// Transitioner owns the animation lock for question transitions. A request
// made while a transition is in flight is dropped, never queued, and an
// in-flight transition always runs to completion.
type Transitioner struct {
	sched Scheduler
	out   output
	leave time.Duration
	enter time.Duration

	phase Phase
	req   TransitionRequest
}

// NewTransitioner creates an idle Transitioner.
func NewTransitioner(sched Scheduler, p Presenter, leave, enter time.Duration, log *zap.Logger) *Transitioner {
	return &Transitioner{
		sched: sched,
		out:   newOutput(p, log),
		leave: leave,
		enter: enter,
	}
}

// Phase returns the current phase.
func (t *Transitioner) Phase() Phase {
	return t.phase
}

// Busy reports whether the animation lock is held.
func (t *Transitioner) Busy() bool {
	return t.phase != PhaseIdle
}

// Begin starts a transition. It returns false, changing nothing, when one
// is already in flight.
func (t *Transitioner) Begin(req TransitionRequest) bool {
	next, effects, ok := step(t.phase, triggerBegin, req)
	if !ok {
		t.out.log.Debug("transition rejected", zap.Stringer("phase", t.phase))
		return false
	}
	t.phase, t.req = next, req
	t.out.apply(effects...)
	t.sched.After(t.leave, t.onLeft)
	return true
}

func (t *Transitioner) onLeft() {
	next, effects, ok := step(t.phase, triggerLeft, t.req)
	if !ok {
		return
	}
	t.out.apply(effects...)
	if t.req.Update != nil {
		t.req.Update()
	}
	t.phase = next
	t.out.apply(enterEffects(t.req)...)
	t.sched.After(t.enter, t.onEntered)
}

func (t *Transitioner) onEntered() {
	next, effects, ok := step(t.phase, triggerEntered, t.req)
	if !ok {
		return
	}
	t.out.apply(effects...)
	done := t.req.Done
	t.phase, t.req = next, TransitionRequest{}
	if done != nil {
		done()
	}
}
