package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/longdiv/internal/focus"
)

// keyEvent translates a terminal key press into the navigation layer's
// key vocabulary.
func keyEvent(msg tea.KeyPressMsg) focus.KeyEvent {
	ev := focus.KeyEvent{
		Ctrl:  msg.Mod&tea.ModCtrl != 0,
		Shift: msg.Mod&tea.ModShift != 0,
		Alt:   msg.Mod&tea.ModAlt != 0,
	}
	switch msg.Code {
	case tea.KeyTab:
		ev.Key = focus.KeyTab
	case tea.KeyEnter:
		ev.Key = focus.KeyEnter
	case tea.KeyUp:
		ev.Key = focus.KeyArrowUp
	case tea.KeyDown:
		ev.Key = focus.KeyArrowDown
	case tea.KeyLeft:
		ev.Key = focus.KeyArrowLeft
	case tea.KeyRight:
		ev.Key = focus.KeyArrowRight
	case tea.KeyBackspace:
		ev.Key = focus.KeyBackspace
	case tea.KeyDelete:
		ev.Key = focus.KeyDelete
	default:
		if msg.Text != "" {
			ev.Key = msg.Text
		} else {
			ev.Key = msg.String()
		}
	}
	return ev
}
