package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cols/internal/state"
	textutil "github.com/kk-code-lab/cols/internal/textutil"
)

// Renderer draws a NavigationState onto a tcell screen. It only reads the
// state; the scroll offsets it keeps are purely presentational.
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127), stored as width+1
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes

	scroll  [statepkg.PaneCount]int
	message string
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// SetMessage shows msg on the help line until it is replaced or cleared with
// an empty string.
func (r *Renderer) SetMessage(msg string) {
	r.message = msg
}

// PageDistance is the number of entries a page move should travel for the
// current screen size.
func (r *Renderer) PageDistance() int {
	w, h := r.screen.Size()
	return pageDistanceFor(computeLayout(w, h).visibleRows())
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.NavigationState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	layout := computeLayout(w, h)

	r.drawHeader(state, w)
	for i := 0; i < statepkg.PaneCount; i++ {
		r.drawPane(state, i, layout)
		if i < statepkg.PaneCount-1 {
			r.drawSeparator(layout.paneStart[i]+layout.paneWidth[i], layout)
		}
	}
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the base path on the top row.
func (r *Renderer) drawHeader(state *statepkg.NavigationState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	text := " " + textutil.SanitizeTerminalText(state.BasePath())
	text = r.truncateLeftToWidth(text, w)
	endX := r.drawTextLine(0, 0, w, text, style)
	r.fillRow(endX, w, 0, style)
}

func (r *Renderer) drawSeparator(x int, layout layoutMetrics) {
	style := tcell.StyleDefault.Background(r.theme.PaneBg).Foreground(r.theme.SeparatorFg)
	for y := layout.listStartY; y < layout.listEndY; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

// drawPane renders the entries of pane i, scrolled so the cursor is visible.
func (r *Renderer) drawPane(state *statepkg.NavigationState, i int, layout layoutMetrics) {
	startX, width := layout.paneStart[i], layout.paneWidth[i]
	baseStyle := tcell.StyleDefault.Background(r.theme.PaneBg)
	if width <= 0 {
		return
	}

	entries := state.Entries(i)
	selected, hasSelection := state.SelectedIn(i)
	visible := layout.visibleRows()

	anchor := r.scroll[i]
	if hasSelection {
		anchor = selected
	}
	offset := scrollOffset(r.scroll[i], anchor, visible, len(entries))
	r.scroll[i] = offset

	y := layout.listStartY
	for idx := offset; idx < len(entries) && y < layout.listEndY; idx++ {
		isSelected := hasSelection && idx == selected
		style := r.entryStyle(entries[idx], isSelected, i == state.Active())

		name := textutil.SanitizeTerminalText(entries[idx].Name)
		text := " " + r.truncateTextToWidth(name, width-2)
		endX := r.drawTextLine(startX, y, width, text, style)
		r.fillRow(endX, startX+width, y, style)
		y++
	}

	for ; y < layout.listEndY; y++ {
		r.fillRow(startX, startX+width, y, baseStyle)
	}
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry, selected, activePane bool) tcell.Style {
	base := tcell.StyleDefault.Background(r.theme.PaneBg)
	switch {
	case selected && activePane:
		return base.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(entry.IsDir)
	case selected:
		base = base.Background(r.theme.TrailSelectionBg).Foreground(r.theme.TrailSelectionFg)
	}

	switch {
	case entry.IsSymlink:
		base = base.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		base = base.Foreground(r.theme.DirectoryFg).Bold(true)
	case !selected:
		base = base.Foreground(r.theme.FileFg)
	}
	if entry.IsHidden() {
		base = base.Foreground(r.theme.HiddenFg)
	}
	return base
}

// drawStatusLine renders the selected path and the help or message line.
func (r *Renderer) drawStatusLine(state *statepkg.NavigationState, w, h int) {
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	pathY := h - statusRows
	if pathY >= headerRows {
		pathText := ""
		if entry, ok := state.SelectedEntry(); ok {
			pathText = entry.Path
		}
		pathText = r.truncateLeftToWidth(" "+textutil.SanitizeTerminalText(pathText), w)
		endX := r.drawTextLine(0, pathY, w, pathText, normalStyle)
		r.fillRow(endX, w, pathY, normalStyle)
	}

	helpY := h - 1
	helpStyle := normalStyle
	helpText := buildFooterHelpText(state)
	if r.message != "" {
		helpStyle = tcell.StyleDefault.Background(r.theme.MessageBg).Foreground(r.theme.MessageFg)
		helpText = " " + textutil.SanitizeTerminalText(r.message) + " "
	}
	helpText = r.truncateTextToWidth(helpText, w)
	endX := r.drawTextLine(0, helpY, w, helpText, helpStyle)
	r.fillRow(endX, w, helpY, normalStyle)
}
