package feedback

import (
	"math/rand/v2"

	"github.com/abhisek/plantquiz/internal/quiz"
)

// Selector hands out reaction strings for answered categories without
// repeating one within a cycle of that category's pool.
type Selector struct {
	pools          map[quiz.Category][]string
	encouragements []string
	insights       map[int]string
	shown          map[quiz.Category]map[int]bool
	rng            *rand.Rand
}

// New creates a Selector with the default pools. A nil src seeds from the
// runtime's random source.
func New(src rand.Source) *Selector {
	return NewWithPools(DefaultPools(), DefaultEncouragements(), DefaultInsights(), src)
}

// NewWithPools creates a Selector over the given content.
func NewWithPools(pools map[quiz.Category][]string, encouragements []string, insights map[int]string, src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Selector{
		pools:          pools,
		encouragements: encouragements,
		insights:       insights,
		shown:          make(map[quiz.Category]map[int]bool),
		rng:            rand.New(src),
	}
}

// Pick returns a reaction for c. Within one cycle every string of the pool
// is returned once before any repeats. Categories without a pool get a
// random encouragement.
func (s *Selector) Pick(c quiz.Category) string {
	pool := s.pools[c]
	if len(pool) == 0 {
		return s.Encouragement()
	}

	shown := s.shown[c]
	if shown == nil || len(shown) >= len(pool) {
		shown = make(map[int]bool, len(pool))
		s.shown[c] = shown
	}

	available := make([]int, 0, len(pool)-len(shown))
	for i := range pool {
		if !shown[i] {
			available = append(available, i)
		}
	}

	idx := available[s.rng.IntN(len(available))]
	shown[idx] = true
	return pool[idx]
}

// Encouragement returns a random category-agnostic string, or "" if none
// are configured.
func (s *Selector) Encouragement() string {
	if len(s.encouragements) == 0 {
		return ""
	}
	return s.encouragements[s.rng.IntN(len(s.encouragements))]
}

// Insight returns the stage insight for a 1-based question number.
func (s *Selector) Insight(questionNumber int) (string, bool) {
	text, ok := s.insights[questionNumber]
	return text, ok
}

// Reset forgets what has been shown, as at the start of a new quiz.
func (s *Selector) Reset() {
	clear(s.shown)
}
