package choreo

import (
	"time"

	"go.uber.org/zap"
)

// Stage is one of the three forest depth phases of the backdrop.
type Stage int

const (
	StageEntrance Stage = 1 // questions 0-3
	StageMid      Stage = 2 // questions 4-6
	StageDeep     Stage = 3 // questions 7+
)

// StageOf derives the backdrop stage from a 1-based question number, where
// 0 is the start screen.
func StageOf(questionNumber int) Stage {
	switch {
	case questionNumber >= 7:
		return StageDeep
	case questionNumber >= 4:
		return StageMid
	default:
		return StageEntrance
	}
}

// Backdrop drives the forest background: stage crossfades, the cosmetic
// zoom level and the progress trail.
type Backdrop struct {
	sched  Scheduler
	out    output
	settle time.Duration

	base       Stage // stage of the settled base layer
	target     Stage // stage most recently requested
	zoom       int
	footprints map[int]bool
	epoch      int
}

// NewBackdrop creates a Backdrop at the entrance stage.
func NewBackdrop(sched Scheduler, p Presenter, settle time.Duration, log *zap.Logger) *Backdrop {
	return &Backdrop{
		sched:      sched,
		out:        newOutput(p, log),
		settle:     settle,
		base:       StageEntrance,
		target:     StageEntrance,
		footprints: make(map[int]bool),
	}
}

// Stage returns the settled stage of the base layer.
func (b *Backdrop) Stage() Stage {
	return b.base
}

// Transitioning reports whether a crossfade has not settled yet.
func (b *Backdrop) Transitioning() bool {
	return b.base != b.target
}

// Zoom returns the current zoom level (0 means none).
func (b *Backdrop) Zoom() int {
	return b.zoom
}

// Show updates the backdrop for a 1-based question number.
func (b *Backdrop) Show(questionNumber int) {
	if st := StageOf(questionNumber); st != b.target {
		b.crossfade(st)
	}

	b.out.apply(Effect{Op: OpClearZoom, Target: TargetBackdrop})
	b.zoom = 0
	if questionNumber > 0 {
		b.zoom = questionNumber
		b.out.apply(Effect{Op: OpSetZoom, Target: TargetBackdrop, N: questionNumber})
	}
}

func (b *Backdrop) crossfade(to Stage) {
	b.target = to
	epoch := b.epoch

	b.out.apply(
		Effect{Op: OpPreloadStage, Target: TargetBackdrop, N: int(to)},
		Effect{Op: OpSetTransitioning, Target: TargetBackdrop},
	)

	b.sched.After(b.settle, func() {
		if b.epoch != epoch {
			return
		}
		b.base = to
		b.out.apply(Effect{Op: OpSetStage, Target: TargetBackdrop, N: int(to)})
		// An overlapping crossfade owns the flag until it settles itself.
		if b.target == to {
			b.out.apply(Effect{Op: OpClearTransitioning, Target: TargetBackdrop})
		}
	})
}

// Track moves the progress trail to answered/total and drops a footprint
// for answered if there is not one already.
func (b *Backdrop) Track(answered, total int) {
	var fraction float64
	if total > 0 {
		fraction = float64(answered) / float64(total)
	}
	b.out.apply(Effect{Op: OpSetProgress, Target: TargetProgress, Fraction: fraction})

	if answered > 0 && !b.footprints[answered] {
		b.footprints[answered] = true
		b.out.apply(Effect{Op: OpAddFootprint, Target: TargetProgress, N: answered, Fraction: fraction})
	}
}

// Reset returns to the entrance stage with no zoom and an empty trail.
// Crossfades scheduled before the reset settle as no-ops.
func (b *Backdrop) Reset() {
	b.epoch++
	b.base, b.target, b.zoom = StageEntrance, StageEntrance, 0
	clear(b.footprints)

	b.out.apply(
		Effect{Op: OpSetStage, Target: TargetBackdrop, N: int(StageEntrance)},
		Effect{Op: OpClearTransitioning, Target: TargetBackdrop},
		Effect{Op: OpClearZoom, Target: TargetBackdrop},
		Effect{Op: OpClearFootprints, Target: TargetProgress},
		Effect{Op: OpSetProgress, Target: TargetProgress},
	)
}
