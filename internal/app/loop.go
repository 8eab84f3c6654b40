package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cols/internal/state"
)

// Run draws the UI and processes events until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	renderPending := false

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.log.WithField("path", app.state.BasePath()).Info("quitting")
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// handleAction applies one action and reports whether a redraw is needed.
func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ResizeAction:
		app.screen.Sync()
		return true
	case statepkg.YankPathAction:
		return app.handleYank()
	case statepkg.ScrollPageUpAction:
		if a.Distance <= 0 {
			a.Distance = app.renderer.PageDistance()
		}
		action = a
	case statepkg.ScrollPageDownAction:
		if a.Distance <= 0 {
			a.Distance = app.renderer.PageDistance()
		}
		action = a
	}

	app.renderer.SetMessage("")
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).Warn("action rejected")
		return false
	}
	return true
}
