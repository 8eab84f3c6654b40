package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type NavigateLeftAction struct{}
type NavigateRightAction struct{}

// ScrollPageUpAction and ScrollPageDownAction carry the page size. A zero
// Distance is filled in by the application from the current viewport.
type ScrollPageUpAction struct {
	Distance int
}
type ScrollPageDownAction struct {
	Distance int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type YankPathAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
