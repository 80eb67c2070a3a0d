package quiz

import "errors"

var (
	// ErrInvalidCategory means an answer referenced a category outside the
	// closed set. It signals a content/UI mismatch and should be surfaced.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrOutOfRange means a question was requested or answered after the
	// quiz completed.
	ErrOutOfRange = errors.New("question index out of range")

	// ErrNotCompleted means a result was requested before every question
	// was answered.
	ErrNotCompleted = errors.New("quiz not completed")
)
