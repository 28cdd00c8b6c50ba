package focus

// FocusFunc is called with the new position whenever focus moves, so the
// host can move its real input focus. The controller holds no UI handles.
type FocusFunc func(Position)

// Controller is the stateful wrapper around Transition used by the UI.
type Controller struct {
	state   State
	onFocus FocusFunc
}

// NewController creates a controller on the first quotient field.
// onFocus may be nil.
func NewController(quotientLength, totalSteps int, onFocus FocusFunc) *Controller {
	return &Controller{state: NewState(quotientLength, totalSteps), onFocus: onFocus}
}

// Reset re-initializes the sequence shape and returns to the first field.
func (c *Controller) Reset(quotientLength, totalSteps int) {
	c.set(NewState(quotientLength, totalSteps), true)
}

// Current returns the active field.
func (c *Controller) Current() Position {
	return c.state.Current
}

// State returns the full navigation state.
func (c *Controller) State() State {
	return c.state
}

// Next moves to the following field and returns it.
func (c *Controller) Next() Position {
	s := c.state
	s.Current = Next(s)
	c.set(s, false)
	return c.state.Current
}

// Previous moves to the preceding field and returns it.
func (c *Controller) Previous() Position {
	s := c.state
	s.Current = Previous(s)
	c.set(s, false)
	return c.state.Current
}

// JumpTo sets focus directly, ignoring adjacency. Used for pointer-driven focus.
func (c *Controller) JumpTo(p Position) {
	s := c.state
	s.Current = p
	c.set(s, false)
}

// FocusField sets focus to p and always notifies the host, even if p is
// already active.
func (c *Controller) FocusField(p Position) {
	s := c.state
	s.Current = p
	c.set(s, true)
}

// HandleKeyDown applies a key event. It returns true when the host must
// suppress its default handling of the key.
func (c *Controller) HandleKeyDown(ev KeyEvent) bool {
	s, suppress := Transition(c.state, ev)
	c.set(s, false)
	return suppress
}

func (c *Controller) set(s State, force bool) {
	moved := s.Current != c.state.Current
	c.state = s
	if (moved || force) && c.onFocus != nil {
		c.onFocus(s.Current)
	}
}
