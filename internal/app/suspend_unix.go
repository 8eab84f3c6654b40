//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	if err := app.screen.Suspend(); err != nil {
		app.log.WithError(err).Warn("suspend failed")
		return
	}
	// Stop only this process, not the whole group, so job control in the
	// launching shell keeps working.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}

// contSignals lists the signals that mean the process was continued after
// a stop.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
