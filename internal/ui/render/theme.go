package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg         tcell.Color
	HeaderFg         tcell.Color
	PaneBg           tcell.Color
	FileFg           tcell.Color
	DirectoryFg      tcell.Color
	SymlinkFg        tcell.Color
	HiddenFg         tcell.Color
	SelectionBg      tcell.Color
	SelectionFg      tcell.Color
	TrailSelectionBg tcell.Color
	TrailSelectionFg tcell.Color
	SeparatorFg      tcell.Color
	FooterBg         tcell.Color
	FooterFg         tcell.Color
	MessageBg        tcell.Color
	MessageFg        tcell.Color
}

// GetColorTheme returns the default color scheme. The active cursor is blue;
// cursors in panes left of it (the trail back to the base path) are grey.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:         tcell.ColorDefault,
		HeaderFg:         tcell.ColorDefault,
		PaneBg:           tcell.ColorDefault,
		FileFg:           tcell.ColorDefault,
		DirectoryFg:      tcell.Color33,
		SymlinkFg:        tcell.Color51,
		HiddenFg:         tcell.ColorLightSlateGray,
		SelectionBg:      tcell.Color33,
		SelectionFg:      tcell.ColorWhite,
		TrailSelectionBg: tcell.Color236,
		TrailSelectionFg: tcell.ColorDefault,
		SeparatorFg:      tcell.Color240,
		FooterBg:         tcell.ColorDefault,
		FooterFg:         tcell.ColorDefault,
		MessageBg:        tcell.ColorGreen,
		MessageFg:        tcell.ColorBlack,
	}
}
