package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = '…'

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		r.runeWidthCacheMu.RLock()
		width := r.runeWidthCache[ru]
		r.runeWidthCacheMu.RUnlock()

		if width == 0 {
			actualWidth := runewidth.RuneWidth(ru)
			r.runeWidthCacheMu.Lock()
			r.runeWidthCache[ru] = actualWidth + 1
			r.runeWidthCacheMu.Unlock()
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide.Load(ru); ok {
		return cached.(int)
	}

	width := runewidth.RuneWidth(ru)
	r.runeWidthWide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

// truncateTextToWidth shortens text to maxWidth cells, ending in an ellipsis
// when anything was cut.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := r.cachedRuneWidth(ellipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0
	for _, ru := range text {
		w := r.cachedRuneWidth(ru)
		if currentWidth+w > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += w
	}
	builder.WriteRune(ellipsis)
	return builder.String()
}

// truncateLeftToWidth keeps the tail of text, which for paths is the part
// that identifies where you are.
func (r *Renderer) truncateLeftToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := r.cachedRuneWidth(ellipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	runes := []rune(text)
	available := maxWidth - ellipsisWidth
	start := len(runes)
	currentWidth := 0
	for start > 0 {
		w := r.cachedRuneWidth(runes[start-1])
		if currentWidth+w > available {
			break
		}
		currentWidth += w
		start--
	}
	return string(ellipsis) + string(runes[start:])
}

// drawTextLine draws text starting at startX, clipped to maxWidth cells, and
// returns the x position after the last drawn cell. Zero-width runes are
// attached to the preceding cell as combining characters.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.cachedRuneWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillRow paints cells [fromX, toX) on row y with blanks.
func (r *Renderer) fillRow(fromX, toX, y int, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
