package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducerDispatchesNavigation(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/x", "a/y", "b", "c", "d")

	s := NewNavigationState(root)
	reducer := NewStateReducer(nil)

	steps := []struct {
		action Action
		active int
		pane   int
		want   int
	}{
		{NavigateDownAction{}, 0, 0, 1},
		{ScrollPageDownAction{Distance: 10}, 0, 0, 3},
		{ScrollPageUpAction{Distance: 2}, 0, 0, 1},
		{NavigateUpAction{}, 0, 0, 0},
		{NavigateRightAction{}, 1, 1, 0},
		{NavigateDownAction{}, 1, 1, 1},
		{NavigateLeftAction{}, 0, 0, 0},
	}

	for _, step := range steps {
		_, err := reducer.Reduce(s, step.action)
		require.NoError(t, err, "%T", step.action)
		assert.Equal(t, step.active, s.Active(), "%T", step.action)
		requireSelectedIn(t, s, step.pane, step.want)
	}
}

func TestReducerRejectsUnknownActions(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a")
	s := NewNavigationState(root)

	_, err := NewStateReducer(nil).Reduce(s, QuitAction{})
	assert.Error(t, err)
	requireSelectedIn(t, s, 0, 0)
}
