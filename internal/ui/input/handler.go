package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cols/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.NavigateLeftAction{}
	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.NavigateRightAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

// processRune handles the vi-style letter bindings.
func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'h':
		ih.actionChan <- statepkg.NavigateLeftAction{}
	case 'l':
		ih.actionChan <- statepkg.NavigateRightAction{}
	case 'y':
		ih.actionChan <- statepkg.YankPathAction{}
	}
	return true
}
