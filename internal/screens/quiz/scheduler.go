package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/plantquiz/internal/choreo"
)

// timerFiredMsg is delivered when a scheduled callback is due.
type timerFiredMsg struct {
	owner *tickScheduler
	id    int
}

type pendingTimer struct {
	id int
	d  time.Duration
}

// tickScheduler implements choreo.Scheduler on top of tea.Tick. Callbacks
// run inside Update, so the choreography never races the renderer.
type tickScheduler struct {
	nextID  int
	fns     map[int]func()
	pending []pendingTimer
}

var _ choreo.Scheduler = (*tickScheduler)(nil)

func newTickScheduler() *tickScheduler {
	return &tickScheduler{fns: make(map[int]func())}
}

// After queues fn. The timer starts once Drain's command is run.
func (s *tickScheduler) After(d time.Duration, fn func()) {
	s.nextID++
	s.fns[s.nextID] = fn
	s.pending = append(s.pending, pendingTimer{id: s.nextID, d: max(d, 0)})
}

// Drain returns a command starting every queued timer, or nil.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, p := range s.pending {
		id := p.id
		cmds = append(cmds, tea.Tick(p.d, func(time.Time) tea.Msg {
			return timerFiredMsg{owner: s, id: id}
		}))
	}
	s.pending = s.pending[:0]
	return tea.Batch(cmds...)
}

// Fire runs the callback for msg if it belongs to s. It reports whether
// the message was handled.
func (s *tickScheduler) Fire(msg timerFiredMsg) bool {
	if msg.owner != s {
		return false
	}
	fn, ok := s.fns[msg.id]
	if !ok {
		return false
	}
	delete(s.fns, msg.id)
	fn()
	return true
}

// Outstanding returns the number of callbacks not yet fired.
func (s *tickScheduler) Outstanding() int {
	return len(s.fns)
}
