package state

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// StateReducer applies navigation actions to a NavigationState.
type StateReducer struct {
	log *logrus.Entry
}

// NewStateReducer creates a new reducer. A nil log discards output.
func NewStateReducer(log *logrus.Entry) *StateReducer {
	if log == nil {
		log = discardLogger()
	}
	return &StateReducer{log: log}
}

// Reduce applies action to state in place. Only navigation actions are
// understood; anything else is reported as an error and leaves state as is.
func (r *StateReducer) Reduce(state *NavigationState, action Action) (*NavigationState, error) {
	switch a := action.(type) {
	case NavigateUpAction:
		state.OnUp()
	case NavigateDownAction:
		state.OnDown()
	case ScrollPageUpAction:
		state.OnPageUp(a.Distance)
	case ScrollPageDownAction:
		state.OnPageDown(a.Distance)
	case NavigateLeftAction:
		state.OnLeft()
	case NavigateRightAction:
		state.OnRight()
	default:
		return state, fmt.Errorf("unsupported action %T", action)
	}

	r.log.WithFields(logrus.Fields{
		"action": fmt.Sprintf("%T", action),
		"base":   state.BasePath(),
		"active": state.Active(),
	}).Trace("reduced")
	return state, nil
}
