package session

import "errors"

// Phase is the screen-level phase of a quiz session.
type Phase int

const (
	PhaseStart     Phase = iota // start screen, nothing answered
	PhaseQuestion               // answering questions
	PhaseRevealing              // last answer given, reveal running
	PhaseResult                 // result shown
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseQuestion:
		return "question"
	case PhaseRevealing:
		return "revealing"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

var (
	// ErrBusy is returned while the animation lock or a reveal is held.
	ErrBusy = errors.New("transition in progress")

	// ErrWrongPhase is returned when an operation does not apply to the
	// current phase, e.g. answering on the start screen.
	ErrWrongPhase = errors.New("not allowed in current phase")

	// ErrInvalidOption is returned for an option index outside the question.
	ErrInvalidOption = errors.New("invalid option")
)
