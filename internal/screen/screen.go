package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/longdiv/internal/ui/layout"
)

// Screen is one page of the UI: the difficulty menu, the worksheet or the
// solved summary.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens whose footer hints
// depend on their state.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a short
// status, such as the difficulty, on the right of the header.
type StatusProvider interface {
	Status() string
}
