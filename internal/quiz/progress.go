package quiz

import "fmt"

// State is the coarse state of a quiz run.
type State int

const (
	StateInProgress State = iota // Index < N
	StateCompleted               // Index == N
)

func (s State) String() string {
	if s == StateCompleted {
		return "completed"
	}
	return "in_progress"
}

// Tally counts answers per category. Every category is always present.
type Tally [NumCategories]int

// Get returns the count for c, or 0 for an unknown category.
func (t Tally) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return t[c]
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Map returns the tally keyed by category identifier.
func (t Tally) Map() map[string]int {
	m := make(map[string]int, NumCategories)
	for _, c := range AllCategories() {
		m[c.String()] = t[c]
	}
	return m
}

// Leader returns the category with the highest count. Ties go to the
// category declared first in AllCategories.
func (t Tally) Leader() Category {
	best := Lavender
	for _, c := range AllCategories() {
		if t[c] > t[best] {
			best = c
		}
	}
	return best
}

// Progress is the explicit state of one quiz run. It is a plain value:
// operations return a new Progress instead of mutating shared state.
type Progress struct {
	Index int
	Tally Tally
}

// Start returns the initial progress, InProgress(0) with an empty tally.
func (q *Quiz) Start() Progress {
	return Progress{}
}

// Reset discards p and returns the initial progress.
func (q *Quiz) Reset(Progress) Progress {
	return q.Start()
}

// State reports whether p is still in progress or completed.
func (q *Quiz) State(p Progress) State {
	if p.Index >= len(q.questions) {
		return StateCompleted
	}
	return StateInProgress
}

// HasNext reports whether another question remains.
func (q *Quiz) HasNext(p Progress) bool {
	return p.Index < len(q.questions)
}

// CurrentQuestion returns the question at p.Index. It fails with
// ErrOutOfRange once the quiz is completed.
func (q *Quiz) CurrentQuestion(p Progress) (Question, error) {
	if !q.HasNext(p) {
		return Question{}, fmt.Errorf("current question: %w", ErrOutOfRange)
	}
	return q.Question(p.Index)
}

// QuestionNumber returns the 1-based number of the current question,
// capped at N once completed.
func (q *Quiz) QuestionNumber(p Progress) int {
	if p.Index >= len(q.questions) {
		return len(q.questions)
	}
	return p.Index + 1
}

// ProgressFraction returns Index/N in [0,1].
func (q *Quiz) ProgressFraction(p Progress) float64 {
	n := len(q.questions)
	if n == 0 {
		return 0
	}
	f := float64(p.Index) / float64(n)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// RecordAnswer returns p advanced by one answer for category c. The tally
// and index move together; p itself is never modified.
func (q *Quiz) RecordAnswer(p Progress, c Category) (Progress, error) {
	if !c.Valid() {
		return p, fmt.Errorf("record answer: %w", ErrInvalidCategory)
	}
	if !q.HasNext(p) {
		return p, fmt.Errorf("record answer: %w", ErrOutOfRange)
	}

	next := p
	next.Tally[c]++
	next.Index++
	return next, nil
}

// ComputeResult returns the winning category of a completed quiz.
func (q *Quiz) ComputeResult(p Progress) (Category, error) {
	if q.State(p) != StateCompleted {
		return 0, fmt.Errorf("compute result at %d/%d: %w", p.Index, len(q.questions), ErrNotCompleted)
	}
	return p.Tally.Leader(), nil
}
