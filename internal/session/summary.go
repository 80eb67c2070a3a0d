package session

import (
	"sort"
	"time"

	"github.com/abhisek/plantquiz/internal/content"
	"github.com/abhisek/plantquiz/internal/quiz"
)

// Result is the outcome of a completed session.
type Result struct {
	SessionID   string
	Category    quiz.Category
	Profile     content.Profile
	Tally       quiz.Tally
	StartedAt   time.Time
	CompletedAt time.Time
}

// Share is one category's portion of the answers.
type Share struct {
	Category quiz.Category
	Count    int
	Fraction float64
}

// Breakdown returns every category with at least one answer, highest count
// first. Equal counts keep declaration order.
func (r *Result) Breakdown() []Share {
	total := r.Tally.Total()
	var out []Share
	for _, c := range quiz.AllCategories() {
		n := r.Tally.Get(c)
		if n == 0 {
			continue
		}
		out = append(out, Share{Category: c, Count: n, Fraction: float64(n) / float64(total)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Match is the percentage of answers that went to the result category.
func (r *Result) Match() int {
	total := r.Tally.Total()
	if total == 0 {
		return 0
	}
	return r.Tally.Get(r.Category) * 100 / total
}

// Duration returns how long the session took.
func (r *Result) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
