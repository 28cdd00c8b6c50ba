package focus

// Key names follow the DOM KeyboardEvent.key values the UI layer reports.
const (
	KeyTab        = "Tab"
	KeyEnter      = "Enter"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
)

// KeyEvent is a raw keyboard event from the host UI.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Action is what the navigation layer does with a key.
type Action int

const (
	ActionPassThrough Action = iota // Let the input handle it (digits, Backspace, Delete)
	ActionNext                      // Move to the next field
	ActionPrevious                  // Move to the previous field
	ActionSuppress                  // Swallow the key so the field stays numeric
)

// Classify maps a key event to an Action. Events with Ctrl or Alt held are
// passed through so host shortcuts keep working.
func Classify(ev KeyEvent) Action {
	if ev.Ctrl || ev.Alt {
		return ActionPassThrough
	}
	if isDigit(ev.Key) {
		return ActionPassThrough
	}
	switch ev.Key {
	case KeyTab:
		if ev.Shift {
			return ActionPrevious
		}
		return ActionNext
	case KeyEnter, KeyArrowDown, KeyArrowRight:
		return ActionNext
	case KeyArrowUp, KeyArrowLeft:
		return ActionPrevious
	case KeyBackspace, KeyDelete:
		return ActionPassThrough
	}
	return ActionSuppress
}

// Transition applies ev to s. The boolean is true when the host must
// suppress its default handling of the key.
func Transition(s State, ev KeyEvent) (State, bool) {
	switch Classify(ev) {
	case ActionNext:
		s.Current = Next(s)
		return s, true
	case ActionPrevious:
		s.Current = Previous(s)
		return s, true
	case ActionSuppress:
		return s, true
	}
	return s, false
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
