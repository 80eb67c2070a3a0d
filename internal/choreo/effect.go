package choreo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrTargetAbsent is returned by a Presenter when the element an effect
// refers to is not currently mounted. The step is skipped.
var ErrTargetAbsent = errors.New("target absent")

// Target names a visual element.
type Target string

const (
	TargetStartScreen    Target = "screen.start"
	TargetQuestionScreen Target = "screen.question"
	TargetResultScreen   Target = "screen.result"
	TargetQuestionCard   Target = "question.card"
	TargetBackdrop       Target = "backdrop"
	TargetProgress       Target = "progress"
	TargetOverlay        Target = "overlay"
	TargetRoot           Target = "root"
	TargetFeedback       Target = "banner.feedback"
	TargetInsight        Target = "banner.insight"

	TargetResultIcon          Target = "result.icon"
	TargetResultName          Target = "result.name"
	TargetResultTagline       Target = "result.tagline"
	TargetResultDescription   Target = "result.description"
	TargetResultCoord         Target = "result.coord"
	TargetResultRelationships Target = "result.relationships"
	TargetResultScents        Target = "result.scents"
	TargetResultMatch         Target = "result.match"
)

// ResultSections is the reveal cascade order.
func ResultSections() []Target {
	return []Target{
		TargetResultIcon,
		TargetResultName,
		TargetResultTagline,
		TargetResultDescription,
		TargetResultCoord,
		TargetResultRelationships,
		TargetResultScents,
	}
}

// Op is a single visual mutation.
type Op int

const (
	OpShow Op = iota
	OpHide
	OpMarkExiting
	OpClearExiting
	OpMarkEntering
	OpClearEntering
	OpSetText
	OpPreloadStage
	OpSetStage
	OpSetTransitioning
	OpClearTransitioning
	OpSetZoom
	OpClearZoom
	OpSetProgress
	OpAddFootprint
	OpClearFootprints
	OpInsertOverlay
	OpFadeOverlay
	OpRemoveOverlay
	OpSetAccent
	OpMarkRevealed
	OpClearRevealed
)

var opNames = map[Op]string{
	OpShow:               "show",
	OpHide:               "hide",
	OpMarkExiting:        "mark_exiting",
	OpClearExiting:       "clear_exiting",
	OpMarkEntering:       "mark_entering",
	OpClearEntering:      "clear_entering",
	OpSetText:            "set_text",
	OpPreloadStage:       "preload_stage",
	OpSetStage:           "set_stage",
	OpSetTransitioning:   "set_transitioning",
	OpClearTransitioning: "clear_transitioning",
	OpSetZoom:            "set_zoom",
	OpClearZoom:          "clear_zoom",
	OpSetProgress:        "set_progress",
	OpAddFootprint:       "add_footprint",
	OpClearFootprints:    "clear_footprints",
	OpInsertOverlay:      "insert_overlay",
	OpFadeOverlay:        "fade_overlay",
	OpRemoveOverlay:      "remove_overlay",
	OpSetAccent:          "set_accent",
	OpMarkRevealed:       "mark_revealed",
	OpClearRevealed:      "clear_revealed",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Effect is a side effect produced by a choreography step. Text carries
// strings (banner text, accent color), N carries integers (stage, zoom,
// footprint) and Fraction carries progress.
type Effect struct {
	Op       Op
	Target   Target
	Text     string
	N        int
	Fraction float64
}

// Presenter applies effects to whatever renders them.
type Presenter interface {
	Apply(e Effect) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Effect) error

func (f PresenterFunc) Apply(e Effect) error { return f(e) }

// output applies effects and never lets a failed step stop the sequence.
type output struct {
	presenter Presenter
	log       *zap.Logger
}

func newOutput(p Presenter, log *zap.Logger) output {
	if log == nil {
		log = zap.NewNop()
	}
	return output{presenter: p, log: log}
}

func (o output) apply(effects ...Effect) {
	if o.presenter == nil {
		return
	}
	for _, e := range effects {
		err := o.presenter.Apply(e)
		switch {
		case err == nil:
		case errors.Is(err, ErrTargetAbsent):
			o.log.Debug("skip effect, target absent",
				zap.Stringer("op", e.Op), zap.String("target", string(e.Target)))
		default:
			o.log.Warn("skip effect",
				zap.Stringer("op", e.Op), zap.String("target", string(e.Target)), zap.Error(err))
		}
	}
}
