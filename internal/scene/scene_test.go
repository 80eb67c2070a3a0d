package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/plantquiz/internal/choreo"
)

func TestNewStartsOnStartScreen(t *testing.T) {
	s := New(DefaultTargets()...)
	assert.True(t, s.Visible(choreo.TargetStartScreen))
	assert.False(t, s.Visible(choreo.TargetQuestionScreen))
	assert.Equal(t, choreo.StageEntrance, s.Backdrop.Stage)
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestApplyUnmountedTarget(t *testing.T) {
	s := New(choreo.TargetQuestionCard)
	err := s.Apply(choreo.Effect{Op: choreo.OpShow, Target: choreo.TargetResultIcon})
	require.ErrorIs(t, err, choreo.ErrTargetAbsent)

	s.Unmount(choreo.TargetQuestionCard)
	err = s.Apply(choreo.Effect{Op: choreo.OpShow, Target: choreo.TargetQuestionCard})
	require.ErrorIs(t, err, choreo.ErrTargetAbsent)
	assert.False(t, s.Mounted(choreo.TargetQuestionCard))
}

func TestApplyElementOps(t *testing.T) {
	s := New(DefaultTargets()...)
	card := choreo.TargetQuestionCard

	for _, e := range []choreo.Effect{
		{Op: choreo.OpShow, Target: card},
		{Op: choreo.OpMarkExiting, Target: card},
		{Op: choreo.OpSetText, Target: card, Text: "hello"},
	} {
		require.NoError(t, s.Apply(e))
	}
	assert.Equal(t, Element{Visible: true, Exiting: true, Text: "hello"}, s.Element(card))

	require.NoError(t, s.Apply(choreo.Effect{Op: choreo.OpClearExiting, Target: card}))
	require.NoError(t, s.Apply(choreo.Effect{Op: choreo.OpHide, Target: card}))
	assert.Equal(t, Element{Text: "hello"}, s.Element(card))
}

func TestFadeWithoutOverlayIsAbsent(t *testing.T) {
	s := New(DefaultTargets()...)
	err := s.Apply(choreo.Effect{Op: choreo.OpFadeOverlay, Target: choreo.TargetOverlay})
	assert.ErrorIs(t, err, choreo.ErrTargetAbsent)
}

func TestRevealDrivesScene(t *testing.T) {
	clock := choreo.NewVirtualClock()
	s := New(DefaultTargets()...)
	ch := choreo.New(clock, s, choreo.DefaultTimings(), nil)

	ch.Reveal.Reveal(choreo.RevealRequest{
		Outgoing:  choreo.TargetQuestionScreen,
		Container: choreo.TargetResultScreen,
		Accent:    "#7FB069",
	})
	assert.Equal(t, OverlayShown, s.Overlay)

	clock.Advance(2 * time.Second)
	assert.Equal(t, OverlayFading, s.Overlay)

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, OverlayNone, s.Overlay)
	assert.True(t, s.Visible(choreo.TargetResultScreen))
	assert.Equal(t, "#7FB069", s.Accent)
	assert.True(t, s.Element(choreo.TargetResultIcon).Revealed)
	assert.False(t, s.Element(choreo.TargetResultName).Revealed)

	clock.RunAll()
	for _, section := range choreo.ResultSections() {
		assert.True(t, s.Element(section).Revealed, section)
	}
}

func TestBackdropAndTrail(t *testing.T) {
	clock := choreo.NewVirtualClock()
	s := New(DefaultTargets()...)
	ch := choreo.New(clock, s, choreo.DefaultTimings(), nil)

	ch.Backdrop.Show(4)
	ch.Backdrop.Track(4, 10)
	assert.True(t, s.Backdrop.Transitioning)
	assert.Equal(t, choreo.StageMid, s.Backdrop.NextStage)
	assert.Equal(t, 4, s.Backdrop.Zoom)
	assert.InDelta(t, 0.4, s.Trail.Fraction, 1e-9)
	require.Len(t, s.Trail.Footprints, 1)

	clock.RunAll()
	assert.Equal(t, choreo.StageMid, s.Backdrop.Stage)
	assert.False(t, s.Backdrop.Transitioning)

	ch.Backdrop.Reset()
	assert.Equal(t, choreo.StageEntrance, s.Backdrop.Stage)
	assert.Zero(t, s.Backdrop.Zoom)
	assert.Empty(t, s.Trail.Footprints)
}

func TestReset(t *testing.T) {
	s := New(DefaultTargets()...)
	require.NoError(t, s.Apply(choreo.Effect{Op: choreo.OpHide, Target: choreo.TargetStartScreen}))
	require.NoError(t, s.Apply(choreo.Effect{Op: choreo.OpMarkRevealed, Target: choreo.TargetResultName}))
	require.NoError(t, s.Apply(choreo.Effect{Op: choreo.OpSetAccent, Target: choreo.TargetRoot, Text: "#fff"}))

	s.Reset()
	assert.True(t, s.Visible(choreo.TargetStartScreen))
	assert.False(t, s.Element(choreo.TargetResultName).Revealed)
	assert.Empty(t, s.Accent)
}
