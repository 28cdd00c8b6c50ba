package practice

// newProblemMsg asks the screen to load the next problem on the event loop.
type newProblemMsg struct{}

// completionReadyMsg ends the post-completion debounce for one attempt at
// a problem.
type completionReadyMsg struct {
	SessionID string
	Attempt   int
}
