package render

import statepkg "github.com/kk-code-lab/cols/internal/state"

const (
	headerRows         = 1
	statusRows         = 2
	paneSeparatorWidth = 1
)

type layoutMetrics struct {
	listStartY int
	listEndY   int // exclusive
	paneStart  [statepkg.PaneCount]int
	paneWidth  [statepkg.PaneCount]int
}

func (m layoutMetrics) visibleRows() int {
	rows := m.listEndY - m.listStartY
	if rows < 0 {
		return 0
	}
	return rows
}

// computeLayout splits the width evenly between panes, separated by a single
// column. The last pane absorbs any remainder.
func computeLayout(w, h int) layoutMetrics {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	m := layoutMetrics{
		listStartY: headerRows,
		listEndY:   h - statusRows,
	}
	if m.listEndY < m.listStartY {
		m.listEndY = m.listStartY
	}

	separators := paneSeparatorWidth * (statepkg.PaneCount - 1)
	usable := w - separators
	if usable < 0 {
		usable = 0
	}
	each := usable / statepkg.PaneCount

	x := 0
	for i := 0; i < statepkg.PaneCount; i++ {
		width := each
		if i == statepkg.PaneCount-1 {
			width = usable - each*(statepkg.PaneCount-1)
		}
		m.paneStart[i] = x
		m.paneWidth[i] = width
		x += width + paneSeparatorWidth
	}
	return m
}

// pageDistanceFor returns how far a page move travels: one screen minus the
// row that stays visible for context.
func pageDistanceFor(visible int) int {
	if visible-1 < 1 {
		return 1
	}
	return visible - 1
}

// scrollOffset keeps selected inside a window of visible rows starting at
// offset, and never scrolls past the end of the list.
func scrollOffset(offset, selected, visible, total int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+visible {
		offset = selected - visible + 1
	}
	if maxOffset := total - visible; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
