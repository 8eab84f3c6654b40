package render

import (
	"os"
	"path/filepath"
	"testing"

	statepkg "github.com/kk-code-lab/cols/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFooterHelpSegmentsOnDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o755))

	state := statepkg.NewNavigationState(root)

	assert.Equal(t, []string{
		"↑↓: move",
		"PgUp/PgDn: page",
		"←: back",
		"→: open",
		"y: yank path",
		"q: quit",
	}, buildFooterHelpSegments(state))
}

func TestBuildFooterHelpSegmentsOnFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), nil, 0o644))

	segments := buildFooterHelpSegments(statepkg.NewNavigationState(root))

	assert.NotContains(t, segments, "→: open")
	assert.Contains(t, segments, "y: yank path")
}

func TestBuildFooterHelpSegmentsInEmptyDirectory(t *testing.T) {
	segments := buildFooterHelpSegments(statepkg.NewNavigationState(t.TempDir()))

	assert.NotContains(t, segments, "y: yank path")
	assert.Equal(t, "q: quit", segments[len(segments)-1])
}

func TestBuildFooterHelpTextPadding(t *testing.T) {
	text := buildFooterHelpText(statepkg.NewNavigationState(t.TempDir()))
	assert.True(t, len(text) > 2)
	assert.Equal(t, byte(' '), text[0])
	assert.Equal(t, byte(' '), text[len(text)-1])

	assert.Empty(t, buildFooterHelpText(nil))
}
