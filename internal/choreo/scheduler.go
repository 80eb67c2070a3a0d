package choreo

import (
	"sort"
	"time"
)

// Scheduler runs fn once d has elapsed. It is the only suspension point the
// choreography uses. Implementations must call fn on the same logical thread
// that drives the rest of the UI.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type virtualTimer struct {
	due time.Duration
	seq int
	fn  func()
}

// VirtualClock is a manually advanced Scheduler for tests and headless runs.
type VirtualClock struct {
	now     time.Duration
	seq     int
	pending []virtualTimer
}

var _ Scheduler = (*VirtualClock)(nil)

// NewVirtualClock returns a clock at t=0 with nothing scheduled.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// After schedules fn at now+d. Negative durations are treated as zero.
func (c *VirtualClock) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.pending = append(c.pending, virtualTimer{due: c.now + d, seq: c.seq, fn: fn})
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of callbacks not yet fired.
func (c *VirtualClock) Pending() int {
	return len(c.pending)
}

// Advance moves time forward by d, firing every callback that falls due in
// order of due time then scheduling order. Callbacks scheduled while
// advancing fire too if they fall inside the window.
func (c *VirtualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		next, ok := c.popDue(end)
		if !ok {
			break
		}
		c.now = next.due
		next.fn()
	}
	c.now = end
}

// RunAll advances until nothing is pending.
func (c *VirtualClock) RunAll() {
	for len(c.pending) > 0 {
		latest := c.now
		for _, t := range c.pending {
			if t.due > latest {
				latest = t.due
			}
		}
		c.Advance(latest - c.now)
	}
}

func (c *VirtualClock) popDue(end time.Duration) (virtualTimer, bool) {
	if len(c.pending) == 0 {
		return virtualTimer{}, false
	}
	sort.Slice(c.pending, func(i, j int) bool {
		if c.pending[i].due != c.pending[j].due {
			return c.pending[i].due < c.pending[j].due
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	first := c.pending[0]
	if first.due > end {
		return virtualTimer{}, false
	}
	c.pending = c.pending[1:]
	return first, true
}
