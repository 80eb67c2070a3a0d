// Package scene holds the framework-neutral visual state that choreography
// effects are applied to. Renderers read it; nothing in here draws.
package scene

import (
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/plantquiz/internal/choreo"
)

// Element is the visual state of a single target.
type Element struct {
	Visible  bool
	Exiting  bool
	Entering bool
	Revealed bool
	Text     string
}

// Backdrop is the forest background state.
type Backdrop struct {
	Stage         choreo.Stage
	NextStage     choreo.Stage // preloaded stage, 0 when none
	Transitioning bool
	Zoom          int
}

// Trail is the progress path with its footprints.
type Trail struct {
	Fraction   float64
	Footprints []Footprint
}

// Footprint marks an answered question on the trail.
type Footprint struct {
	Step     int
	Position float64
}

// OverlayState is the lifecycle of the result transition overlay.
type OverlayState int

const (
	OverlayNone OverlayState = iota
	OverlayShown
	OverlayFading
)

// Scene implements choreo.Presenter.
type Scene struct {
	mounted  map[choreo.Target]bool
	elements map[choreo.Target]*Element

	Backdrop Backdrop
	Trail    Trail
	Overlay  OverlayState
	Accent   string
}

var _ choreo.Presenter = (*Scene)(nil)

// New returns a Scene with targets mounted and the start screen visible.
func New(targets ...choreo.Target) *Scene {
	s := &Scene{
		mounted:  make(map[choreo.Target]bool),
		elements: make(map[choreo.Target]*Element),
	}
	s.Mount(targets...)
	s.Reset()
	return s
}

// DefaultTargets lists every element the quiz screens render.
func DefaultTargets() []choreo.Target {
	targets := []choreo.Target{
		choreo.TargetStartScreen,
		choreo.TargetQuestionScreen,
		choreo.TargetResultScreen,
		choreo.TargetQuestionCard,
		choreo.TargetBackdrop,
		choreo.TargetProgress,
		choreo.TargetOverlay,
		choreo.TargetRoot,
		choreo.TargetFeedback,
		choreo.TargetInsight,
		choreo.TargetResultMatch,
	}
	return append(targets, choreo.ResultSections()...)
}

// Mount makes targets available to effects.
func (s *Scene) Mount(targets ...choreo.Target) {
	for _, t := range targets {
		s.mounted[t] = true
		if _, ok := s.elements[t]; !ok {
			s.elements[t] = &Element{}
		}
	}
}

// Unmount removes targets; effects on them report choreo.ErrTargetAbsent.
func (s *Scene) Unmount(targets ...choreo.Target) {
	for _, t := range targets {
		delete(s.mounted, t)
	}
}

// Mounted reports whether t is mounted.
func (s *Scene) Mounted(t choreo.Target) bool {
	return s.mounted[t]
}

// Targets returns the mounted targets in sorted order.
func (s *Scene) Targets() []choreo.Target {
	return slices.Sorted(maps.Keys(s.mounted))
}

// Element returns a copy of the state of t. Unknown targets are zero.
func (s *Scene) Element(t choreo.Target) Element {
	if e, ok := s.elements[t]; ok {
		return *e
	}
	return Element{}
}

// Visible is shorthand for Element(t).Visible.
func (s *Scene) Visible(t choreo.Target) bool {
	return s.Element(t).Visible
}

// Reset returns every element to its initial state: only the start screen
// visible, entrance backdrop, empty trail, no overlay or accent.
func (s *Scene) Reset() {
	for t := range s.elements {
		s.elements[t] = &Element{}
	}
	if e, ok := s.elements[choreo.TargetStartScreen]; ok {
		e.Visible = true
	}
	s.Backdrop = Backdrop{Stage: choreo.StageEntrance}
	s.Trail = Trail{}
	s.Overlay = OverlayNone
	s.Accent = ""
}

// Apply implements choreo.Presenter.
func (s *Scene) Apply(e choreo.Effect) error {
	if !s.mounted[e.Target] {
		return fmt.Errorf("%s %s: %w", e.Op, e.Target, choreo.ErrTargetAbsent)
	}
	el := s.elements[e.Target]

	switch e.Op {
	case choreo.OpShow:
		el.Visible = true
	case choreo.OpHide:
		el.Visible = false
	case choreo.OpMarkExiting:
		el.Exiting = true
	case choreo.OpClearExiting:
		el.Exiting = false
	case choreo.OpMarkEntering:
		el.Entering = true
	case choreo.OpClearEntering:
		el.Entering = false
	case choreo.OpSetText:
		el.Text = e.Text
	case choreo.OpMarkRevealed:
		el.Revealed = true
	case choreo.OpClearRevealed:
		el.Revealed = false

	case choreo.OpPreloadStage:
		s.Backdrop.NextStage = choreo.Stage(e.N)
	case choreo.OpSetStage:
		s.Backdrop.Stage = choreo.Stage(e.N)
		if s.Backdrop.NextStage == s.Backdrop.Stage {
			s.Backdrop.NextStage = 0
		}
	case choreo.OpSetTransitioning:
		s.Backdrop.Transitioning = true
	case choreo.OpClearTransitioning:
		s.Backdrop.Transitioning = false
		s.Backdrop.NextStage = 0
	case choreo.OpSetZoom:
		s.Backdrop.Zoom = e.N
	case choreo.OpClearZoom:
		s.Backdrop.Zoom = 0

	case choreo.OpSetProgress:
		s.Trail.Fraction = e.Fraction
	case choreo.OpAddFootprint:
		s.Trail.Footprints = append(s.Trail.Footprints, Footprint{Step: e.N, Position: e.Fraction})
	case choreo.OpClearFootprints:
		s.Trail.Footprints = nil

	case choreo.OpInsertOverlay:
		s.Overlay = OverlayShown
		el.Visible = true
	case choreo.OpFadeOverlay:
		if s.Overlay == OverlayNone {
			return fmt.Errorf("fade overlay: %w", choreo.ErrTargetAbsent)
		}
		s.Overlay = OverlayFading
	case choreo.OpRemoveOverlay:
		s.Overlay = OverlayNone
		el.Visible = false

	case choreo.OpSetAccent:
		s.Accent = e.Text

	default:
		return fmt.Errorf("unsupported op %s", e.Op)
	}
	return nil
}
