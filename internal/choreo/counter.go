package choreo

import (
	"time"

	"go.uber.org/zap"
)

// countSteps caps how many intermediate values a count-up shows.
const countSteps = 20

// Counter rolls a number up on a target's text.
type Counter struct {
	sched Scheduler
	out   output
	gen   map[Target]int
}

// NewCounter creates a Counter.
func NewCounter(sched Scheduler, p Presenter, log *zap.Logger) *Counter {
	return &Counter{
		sched: sched,
		out:   newOutput(p, log),
		gen:   make(map[Target]int),
	}
}

// CountUp writes format(v) to target for v rising from 0 to `to` in even
// steps over d. A later CountUp or Stop on the same target drops the
// remaining steps.
func (c *Counter) CountUp(target Target, to int, d time.Duration, format func(int) string) {
	c.gen[target]++
	gen := c.gen[target]

	if d <= 0 || to <= 0 {
		c.out.apply(Effect{Op: OpSetText, Target: target, Text: format(max(to, 0))})
		return
	}

	c.out.apply(Effect{Op: OpSetText, Target: target, Text: format(0)})
	steps := min(countSteps, to)
	for i := 1; i <= steps; i++ {
		v := to * i / steps
		c.sched.After(d*time.Duration(i)/time.Duration(steps), func() {
			if c.gen[target] != gen {
				return
			}
			c.out.apply(Effect{Op: OpSetText, Target: target, Text: format(v)})
		})
	}
}

// Stop drops pending steps and blanks target.
func (c *Counter) Stop(target Target) {
	c.gen[target]++
	c.out.apply(Effect{Op: OpSetText, Target: target})
}
