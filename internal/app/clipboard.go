package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	clipboardWriteFn       = clipboard.WriteAll
	clipboardUnsupportedFn = func() bool { return clipboard.Unsupported }
)

// handleYank copies the selected entry's path to the system clipboard and
// reports the outcome on the status line.
func (app *Application) handleYank() bool {
	entry, ok := app.state.SelectedEntry()
	if !ok {
		return false
	}

	if clipboardUnsupportedFn() {
		app.renderer.SetMessage("Clipboard not available")
		return true
	}

	if err := clipboardWriteFn(entry.Path); err != nil {
		app.log.WithError(err).WithField("path", entry.Path).Warn("clipboard write failed")
		app.renderer.SetMessage(fmt.Sprintf("Copy failed: %v", err))
		return true
	}

	app.log.WithField("path", entry.Path).Debug("path copied")
	app.renderer.SetMessage("Copied " + entry.Path)
	return true
}
