package state

import (
	fsutil "github.com/kk-code-lab/cols/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

const noSelection = -1

// Pane is one column of the browser: a directory listing plus an optional
// cursor. When a cursor is present it always indexes into entries.
type Pane struct {
	entries  []FileEntry
	selected int
}

// NewPane builds a pane over entries with no cursor.
func NewPane(entries []FileEntry) Pane {
	return Pane{entries: entries, selected: noSelection}
}

// newPaneAt builds a pane with the cursor on idx, or no cursor when idx is
// out of range.
func newPaneAt(entries []FileEntry, idx int) Pane {
	p := NewPane(entries)
	if idx >= 0 && idx < len(entries) {
		p.selected = idx
	}
	return p
}

// Entries returns the pane's listing. Callers must not modify it.
func (p *Pane) Entries() []FileEntry {
	return p.entries
}

// SelectedIndex returns the cursor, if any.
func (p *Pane) SelectedIndex() (int, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return 0, false
	}
	return p.selected, true
}

// SelectedEntry returns the entry under the cursor, if any.
func (p *Pane) SelectedEntry() (FileEntry, bool) {
	idx, ok := p.SelectedIndex()
	if !ok {
		return FileEntry{}, false
	}
	return p.entries[idx], true
}

// SelectFirst puts the cursor on the first entry, or clears it when empty.
func (p *Pane) SelectFirst() {
	if len(p.entries) == 0 {
		p.selected = noSelection
		return
	}
	p.selected = 0
}

// Unselect clears the cursor.
func (p *Pane) Unselect() {
	p.selected = noSelection
}

// SelectNext moves the cursor down by one and reports whether it moved.
func (p *Pane) SelectNext() bool {
	return p.SelectNextBy(1)
}

// SelectPrev moves the cursor up by one and reports whether it moved.
func (p *Pane) SelectPrev() bool {
	return p.SelectPrevBy(1)
}

// SelectNextBy moves the cursor down by n, clamped to the last entry.
// A pane without a cursor starts from the first entry.
func (p *Pane) SelectNextBy(n int) bool {
	if len(p.entries) == 0 {
		return false
	}
	cur, ok := p.SelectedIndex()
	if !ok {
		p.selected = 0
		return true
	}
	return p.moveTo(cur + clampStep(n))
}

// SelectPrevBy moves the cursor up by n, clamped to the first entry.
// A pane without a cursor starts from the last entry.
func (p *Pane) SelectPrevBy(n int) bool {
	if len(p.entries) == 0 {
		return false
	}
	cur, ok := p.SelectedIndex()
	if !ok {
		p.selected = len(p.entries) - 1
		return true
	}
	return p.moveTo(cur - clampStep(n))
}

func (p *Pane) moveTo(idx int) bool {
	if idx < 0 {
		idx = 0
	}
	if last := len(p.entries) - 1; idx > last {
		idx = last
	}
	if idx == p.selected {
		return false
	}
	p.selected = idx
	return true
}

// clampStep keeps paging useful on a one-row viewport.
func clampStep(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
