package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/plantquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a status
// string on the right of the header.
type StatusProvider interface {
	Status() string
}

// Refresher is an optional interface for screens that reload their data
// when they become active again after the screen above them is popped.
type Refresher interface {
	Refresh() tea.Cmd
}

// DepthProvider is an optional interface for screens that tint the frame
// with the forest stage and show trail progress under the header.
type DepthProvider interface {
	Depth() (stage int, progress float64)
}
