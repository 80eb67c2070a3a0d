package choreo

import (
	"time"

	"go.uber.org/zap"
)

// RevealRequest describes a result reveal.
type RevealRequest struct {
	// Outgoing is hidden when the overlay lifts. Optional.
	Outgoing Target

	// Container is the result element shown before the cascade.
	Container Target

	// Accent is bound to the shared accent variable.
	Accent string

	// Done runs once the cascade is scheduled, not when it finishes.
	Done func()
}

// Revealer runs the result reveal: overlay dwell, overlay fade, accent
// binding, container reveal, then a staggered cascade over the sections.
type Revealer struct {
	sched    Scheduler
	out      output
	dwell    time.Duration
	fade     time.Duration
	stagger  time.Duration
	sections []Target

	busy  bool
	epoch int
}

// NewRevealer creates a Revealer cascading over sections in order.
func NewRevealer(sched Scheduler, p Presenter, dwell, fade, stagger time.Duration, sections []Target, log *zap.Logger) *Revealer {
	return &Revealer{
		sched:    sched,
		out:      newOutput(p, log),
		dwell:    dwell,
		fade:     fade,
		stagger:  stagger,
		sections: sections,
	}
}

// Busy reports whether the overlay part of a reveal is still running.
func (r *Revealer) Busy() bool {
	return r.busy
}

// Reveal starts the sequence. It returns false if one is already running.
func (r *Revealer) Reveal(req RevealRequest) bool {
	if r.busy {
		r.out.log.Debug("reveal rejected, already running")
		return false
	}
	r.busy = true

	r.out.apply(Effect{Op: OpInsertOverlay, Target: TargetOverlay})
	r.sched.After(r.dwell, func() {
		r.out.apply(Effect{Op: OpFadeOverlay, Target: TargetOverlay})
		r.sched.After(r.fade, func() {
			r.out.apply(Effect{Op: OpRemoveOverlay, Target: TargetOverlay})
			if req.Outgoing != "" {
				r.out.apply(Effect{Op: OpHide, Target: req.Outgoing})
			}
			r.out.apply(
				Effect{Op: OpSetAccent, Target: TargetRoot, Text: req.Accent},
				Effect{Op: OpShow, Target: req.Container},
			)
			r.cascade()
			r.busy = false
			if req.Done != nil {
				req.Done()
			}
		})
	})
	return true
}

func (r *Revealer) cascade() {
	epoch := r.epoch
	for i, section := range r.sections {
		r.sched.After(time.Duration(i)*r.stagger, func() {
			if r.epoch != epoch {
				return
			}
			r.out.apply(Effect{Op: OpMarkRevealed, Target: section})
		})
	}
}

// Conceal clears the revealed markers and hides container. Cascade steps
// still pending from an earlier reveal are dropped.
func (r *Revealer) Conceal(container Target) {
	r.epoch++
	for _, section := range r.sections {
		r.out.apply(Effect{Op: OpClearRevealed, Target: section})
	}
	r.out.apply(Effect{Op: OpHide, Target: container})
}
