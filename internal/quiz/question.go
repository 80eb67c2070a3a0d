package quiz

import (
	"errors"
	"fmt"
)

// Option is one forced-choice answer. Picking it adds one to Category's tally.
type Option struct {
	Label    string
	Category Category
}

// Question is a prompt with its ordered options.
type Question struct {
	Prompt  string
	Options []Option
}

// Quiz is an immutable, ordered question set.
type Quiz struct {
	questions []Question
}

// New builds a Quiz from questions. The slice is copied so later changes by
// the caller are not observed.
func New(questions []Question) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, errors.New("quiz needs at least one question")
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", i+1)
		}
		for j, opt := range q.Options {
			if !opt.Category.Valid() {
				return nil, fmt.Errorf("question %d option %d: %w", i+1, j+1, ErrInvalidCategory)
			}
		}
		opts := make([]Option, len(q.Options))
		copy(opts, q.Options)
		qs[i] = Question{Prompt: q.Prompt, Options: opts}
	}

	return &Quiz{questions: qs}, nil
}

// Len returns the number of questions (N).
func (q *Quiz) Len() int {
	return len(q.questions)
}

// Question returns the question at index i.
func (q *Quiz) Question(i int) (Question, error) {
	if i < 0 || i >= len(q.questions) {
		return Question{}, fmt.Errorf("question %d of %d: %w", i, len(q.questions), ErrOutOfRange)
	}
	return q.questions[i], nil
}
