package state

import (
	"io"
	"path/filepath"

	fsutil "github.com/kk-code-lab/cols/internal/fs"
	"github.com/sirupsen/logrus"
)

// PaneCount is the number of panes visible at once.
const PaneCount = 2

// readDirectoryFn mirrors fs.ReadDirectory but is overridable in tests.
var readDirectoryFn = fsutil.ReadDirectory

// NavigationState is the Miller-column window: PaneCount panes anchored at
// basePath, with one active pane receiving cursor movement.
//
// Whenever the left pane has a directory selected, the right pane holds that
// directory's listing; otherwise the right pane is empty. Every mutating
// method restores this before returning.
type NavigationState struct {
	basePath string
	panes    [PaneCount]Pane
	active   int
	log      *logrus.Entry
}

// Option configures a NavigationState.
type Option func(*NavigationState)

// WithLogger routes debug output for recovered read failures and rejected
// transitions to log.
func WithLogger(log *logrus.Entry) Option {
	return func(s *NavigationState) {
		if log != nil {
			s.log = log
		}
	}
}

// NewNavigationState lists basePath into the left pane with the first entry
// selected and previews that entry in the right pane.
func NewNavigationState(basePath string, opts ...Option) *NavigationState {
	s := &NavigationState{
		basePath: filepath.Clean(basePath),
		log:      discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	left := NewPane(s.list(s.basePath))
	left.SelectFirst()
	s.panes[0] = left
	s.refreshRightOf(0)
	return s
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// ===== QUERIES =====

// BasePath returns the directory shown in the leftmost pane.
func (s *NavigationState) BasePath() string {
	return s.basePath
}

// Active returns the index of the pane receiving cursor movement.
func (s *NavigationState) Active() int {
	return s.active
}

// Entries returns the listing of pane i, or nil for an invalid index.
func (s *NavigationState) Entries(i int) []FileEntry {
	if i < 0 || i >= PaneCount {
		return nil
	}
	return s.panes[i].Entries()
}

// SelectedIn returns the cursor of pane i. Panes right of the active one may
// still remember a cursor from earlier navigation; it is not reported.
func (s *NavigationState) SelectedIn(i int) (int, bool) {
	if i < 0 || i >= PaneCount || i > s.active {
		return 0, false
	}
	return s.panes[i].SelectedIndex()
}

// SelectedEntry returns the entry under the active pane's cursor.
func (s *NavigationState) SelectedEntry() (FileEntry, bool) {
	return s.panes[s.active].SelectedEntry()
}

// ===== TRANSITIONS =====

// OnUp moves the active cursor up one entry.
func (s *NavigationState) OnUp() {
	if s.panes[s.active].SelectPrev() {
		s.refreshRightOf(s.active)
	}
}

// OnDown moves the active cursor down one entry.
func (s *NavigationState) OnDown() {
	if s.panes[s.active].SelectNext() {
		s.refreshRightOf(s.active)
	}
}

// OnPageUp moves the active cursor up by distance entries.
func (s *NavigationState) OnPageUp(distance int) {
	if s.panes[s.active].SelectPrevBy(distance) {
		s.refreshRightOf(s.active)
	}
}

// OnPageDown moves the active cursor down by distance entries.
func (s *NavigationState) OnPageDown(distance int) {
	if s.panes[s.active].SelectNextBy(distance) {
		s.refreshRightOf(s.active)
	}
}

// OnLeft activates the pane to the left, or shifts the window out to the
// parent of basePath when the leftmost pane is already active.
func (s *NavigationState) OnLeft() {
	if s.active > 0 {
		s.active--
		return
	}

	parent := filepath.Dir(s.basePath)
	if parent == s.basePath {
		return
	}

	entries := s.list(parent)
	idx := fsutil.IndexOfPath(entries, s.basePath)
	left := newPaneAt(entries, idx)

	right := s.panes[0]
	if idx < 0 {
		s.log.WithField("path", s.basePath).Debug("origin not found in parent listing")
		right = NewPane(nil)
	}

	s.panes = [PaneCount]Pane{left, right}
	s.basePath = parent
}

// OnRight enters the directory under the active cursor: the next pane is
// activated when there is one, otherwise the window shifts in by one.
func (s *NavigationState) OnRight() {
	selected, ok := s.SelectedEntry()
	if !ok || !selected.IsDir {
		return
	}

	if s.active < PaneCount-1 {
		s.active++
		s.panes[s.active].SelectFirst()
		return
	}

	parent := filepath.Dir(selected.Path)
	if parent == selected.Path || parent == "." {
		s.log.WithField("path", selected.Path).Debug("no parent for selected directory")
		return
	}

	entered := NewPane(s.list(selected.Path))
	entered.SelectFirst()

	var shifted [PaneCount]Pane
	copy(shifted[:], s.panes[1:])
	shifted[PaneCount-1] = entered

	s.panes = shifted
	s.basePath = parent
}

// refreshRightOf re-derives the pane right of i from i's selection.
func (s *NavigationState) refreshRightOf(i int) {
	if i+1 >= PaneCount {
		return
	}

	var entries []FileEntry
	if selected, ok := s.panes[i].SelectedEntry(); ok && selected.IsDir {
		entries = s.list(selected.Path)
	}

	next := NewPane(entries)
	next.SelectFirst()
	s.panes[i+1] = next
}

func (s *NavigationState) list(path string) []FileEntry {
	entries, err := readDirectoryFn(path)
	if err != nil {
		s.log.WithError(err).WithField("path", path).Debug("directory listing replaced with empty pane")
		return []FileEntry{}
	}
	return entries
}
