package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cols/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return b.String()
}

func cellBackground(screen tcell.SimulationScreen, x, y int) tcell.Color {
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func makeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		full := filepath.Join(root, strings.TrimSuffix(n, "/"))
		if strings.HasSuffix(n, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
}

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{name: "fits without truncation", text: "file.txt", width: 20, expect: "file.txt"},
		{name: "adds ellipsis when needed", text: "verylongname", width: 6, expect: "veryl…"},
		{name: "only ellipsis when width too small", text: "example", width: 1, expect: "…"},
		{name: "multi-byte characters respected", text: "你好世界", width: 5, expect: "你好…"},
		{name: "returns empty when width is zero", text: "anything", width: 0, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, r.truncateTextToWidth(tt.text, tt.width))
		})
	}
}

func TestTruncateLeftToWidthKeepsTail(t *testing.T) {
	r := NewRenderer(nil)

	assert.Equal(t, "/home/me", r.truncateLeftToWidth("/home/me", 8))
	assert.Equal(t, "…/projects", r.truncateLeftToWidth("/home/me/projects", 10))
	assert.Equal(t, "…", r.truncateLeftToWidth("/home/me/projects", 1))
	assert.Equal(t, "", r.truncateLeftToWidth("/home", 0))
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	assert.Equal(t, 3, r.measureTextWidth("abc"))
	assert.Equal(t, 4, r.measureTextWidth("你好"))
}

func TestComputeLayoutSplitsPanesEvenly(t *testing.T) {
	m := computeLayout(81, 24)
	assert.Equal(t, [statepkg.PaneCount]int{0, 41}, m.paneStart)
	assert.Equal(t, [statepkg.PaneCount]int{40, 40}, m.paneWidth)
	assert.Equal(t, 21, m.visibleRows())

	m = computeLayout(80, 24)
	assert.Equal(t, [statepkg.PaneCount]int{39, 40}, m.paneWidth)

	m = computeLayout(0, 2)
	assert.Equal(t, 0, m.visibleRows())
	assert.Equal(t, [statepkg.PaneCount]int{0, 0}, m.paneWidth)
}

func TestPageDistance(t *testing.T) {
	r := NewRenderer(newTestScreen(t, 80, 24))
	assert.Equal(t, 20, r.PageDistance())

	r = NewRenderer(newTestScreen(t, 80, 3))
	assert.Equal(t, 1, r.PageDistance())
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                             string
		offset, selected, visible, total int
		want                             int
	}{
		{"list fits", 5, 3, 10, 8, 0},
		{"selection below window", 0, 12, 5, 20, 8},
		{"selection above window", 10, 4, 5, 20, 4},
		{"selection inside window", 3, 5, 5, 20, 3},
		{"clamped to end", 18, 19, 5, 20, 15},
		{"no rows", 3, 3, 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scrollOffset(tt.offset, tt.selected, tt.visible, tt.total))
		})
	}
}

func TestRenderDrawsHeaderPanesAndStatus(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, "apple", "Banana/seed", "cherry.txt")
	state := statepkg.NewNavigationState(root)

	screen := newTestScreen(t, 160, 10)
	NewRenderer(screen).Render(state)

	assert.Contains(t, rowText(screen, 0), filepath.Base(root))

	row1 := rowText(screen, 1)
	assert.True(t, strings.HasPrefix(row1, " Banana/"), "row 1 was %q", row1)
	assert.Contains(t, row1, "seed")
	assert.Contains(t, row1, "│")
	assert.True(t, strings.HasPrefix(rowText(screen, 2), " apple"))
	assert.True(t, strings.HasPrefix(rowText(screen, 3), " cherry.txt"))

	assert.Contains(t, rowText(screen, 8), filepath.Join(root, "Banana"))
	assert.Contains(t, rowText(screen, 9), "q: quit")
}

func TestRenderHighlightsActiveCursorAndTrail(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, "dir/one", "dir/two")
	state := statepkg.NewNavigationState(root)
	theme := GetColorTheme()

	screen := newTestScreen(t, 40, 8)
	r := NewRenderer(screen)
	rightX := computeLayout(40, 8).paneStart[1]

	r.Render(state)
	assert.Equal(t, theme.SelectionBg, cellBackground(screen, 0, 1))
	assert.NotEqual(t, theme.SelectionBg, cellBackground(screen, rightX, 1), "inactive pane cursor is hidden")

	state.OnRight()
	r.Render(state)
	assert.Equal(t, theme.TrailSelectionBg, cellBackground(screen, 0, 1))
	assert.Equal(t, theme.SelectionBg, cellBackground(screen, rightX, 1))
}

func TestRenderScrollsToKeepCursorVisible(t *testing.T) {
	root := t.TempDir()
	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("file%02d", i)
	}
	makeFiles(t, root, names...)
	state := statepkg.NewNavigationState(root)

	screen := newTestScreen(t, 40, 10) // 7 visible rows
	r := NewRenderer(screen)

	state.OnPageDown(r.PageDistance() * 3)
	r.Render(state)
	assert.True(t, strings.HasPrefix(rowText(screen, 7), " file18"), "row was %q", rowText(screen, 7))

	state.OnPageDown(100)
	r.Render(state)
	assert.True(t, strings.HasPrefix(rowText(screen, 7), " file29"))
	assert.True(t, strings.HasPrefix(rowText(screen, 1), " file23"))

	state.OnUp()
	r.Render(state)
	assert.True(t, strings.HasPrefix(rowText(screen, 1), " file23"), "moving inside the window does not scroll")
}

func TestRenderShowsMessageInsteadOfHelp(t *testing.T) {
	state := statepkg.NewNavigationState(t.TempDir())
	screen := newTestScreen(t, 40, 6)
	r := NewRenderer(screen)

	r.SetMessage("copied /tmp/x")
	r.Render(state)
	assert.Contains(t, rowText(screen, 5), "copied /tmp/x")

	r.SetMessage("")
	r.Render(state)
	assert.Contains(t, rowText(screen, 5), "q: quit")
}

func TestRenderSanitizesNames(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "evil\x1b[2Jname"), nil, 0o644); err != nil {
		t.Skipf("filesystem rejected name: %v", err)
	}
	state := statepkg.NewNavigationState(root)

	screen := newTestScreen(t, 40, 6)
	NewRenderer(screen).Render(state)

	assert.True(t, strings.HasPrefix(rowText(screen, 1), " evil?[2Jname"))
}
