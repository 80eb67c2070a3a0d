package choreo

import (
	"time"

	"go.uber.org/zap"
)

// Announcer shows short-lived banner text such as answer reactions and
// stage insights.
type Announcer struct {
	sched Scheduler
	out   output
	gen   map[Target]int
}

// NewAnnouncer creates an Announcer.
func NewAnnouncer(sched Scheduler, p Presenter, log *zap.Logger) *Announcer {
	return &Announcer{
		sched: sched,
		out:   newOutput(p, log),
		gen:   make(map[Target]int),
	}
}

// Flash shows text on target, hides it after hold and, when clearAfter is
// positive, blanks the text clearAfter later. A later Flash or Clear on the
// same target supersedes pending steps of an earlier one.
func (a *Announcer) Flash(target Target, text string, hold, clearAfter time.Duration) {
	a.gen[target]++
	gen := a.gen[target]

	a.out.apply(
		Effect{Op: OpHide, Target: target},
		Effect{Op: OpSetText, Target: target, Text: text},
		Effect{Op: OpShow, Target: target},
	)

	a.sched.After(hold, func() {
		if a.gen[target] != gen {
			return
		}
		a.out.apply(Effect{Op: OpHide, Target: target})
		if clearAfter <= 0 {
			return
		}
		a.sched.After(clearAfter, func() {
			if a.gen[target] != gen {
				return
			}
			a.out.apply(Effect{Op: OpSetText, Target: target})
		})
	})
}

// Clear hides target and blanks its text immediately.
func (a *Announcer) Clear(target Target) {
	a.gen[target]++
	a.out.apply(
		Effect{Op: OpSetText, Target: target},
		Effect{Op: OpHide, Target: target},
	)
}
