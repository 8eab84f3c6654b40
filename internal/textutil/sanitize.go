package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Filenames may carry bidi overrides and zero-width runes that reorder or hide
// text on screen; the common ones get a readable label.
var formatLabels = map[rune]string{
	0x200B: "ZWSP",
	0x200C: "ZWNJ",
	0x200D: "ZWJ",
	0x200E: "LRM",
	0x200F: "RLM",
	0x202A: "LRE",
	0x202B: "RLE",
	0x202C: "PDF",
	0x202D: "LRO",
	0x202E: "RLO",
	0x2066: "LRI",
	0x2067: "RLI",
	0x2068: "FSI",
	0x2069: "PDI",
	0xFEFF: "BOM",
}

// SanitizeTerminalText makes user-controlled text safe to draw: control
// characters cannot inject escape sequences and invisible format runes are
// shown as labels.
func SanitizeTerminalText(text string) string {
	if !needsSanitizing(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			b.WriteString(formatLabel(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return true
		}
	}
	return false
}

func formatLabel(r rune) string {
	if label, ok := formatLabels[r]; ok {
		return "⟪" + label + "⟫"
	}
	return fmt.Sprintf("⟪U+%04X⟫", r)
}
