package render

import (
	"path/filepath"
	"strings"

	statepkg "github.com/kk-code-lab/cols/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.NavigationState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments only advertises moves that would currently do
// something.
func buildFooterHelpSegments(state *statepkg.NavigationState) []string {
	if state == nil {
		return nil
	}

	segments := []string{"↑↓: move", "PgUp/PgDn: page"}
	if canGoLeft(state) {
		segments = append(segments, "←: back")
	}
	if entry, ok := state.SelectedEntry(); ok {
		if entry.IsDir {
			segments = append(segments, "→: open")
		}
		segments = append(segments, "y: yank path")
	}
	return append(segments, "q: quit")
}

func canGoLeft(state *statepkg.NavigationState) bool {
	if state.Active() > 0 {
		return true
	}
	base := state.BasePath()
	return filepath.Dir(base) != base
}
