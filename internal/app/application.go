package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/cols/internal/logging"
	statepkg "github.com/kk-code-lab/cols/internal/state"
	inputui "github.com/kk-code-lab/cols/internal/ui/input"
	renderui "github.com/kk-code-lab/cols/internal/ui/render"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

var (
	newScreenFn  = tcell.NewScreen
	getwdFn      = os.Getwd
	isTerminalFn = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.NavigationState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        *logrus.Entry
	shouldQuit bool
}

// NewApplication takes over the terminal and opens the working directory.
func NewApplication(logger *logrus.Logger) (*Application, error) {
	if !isTerminalFn() {
		return nil, ErrNotTerminal
	}

	cwd, err := getwdFn()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	screen, err := newScreenFn()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialise terminal: %w", err)
	}

	return newApplication(screen, cwd, logger), nil
}

// newApplication wires an already initialised screen to a fresh state
// rooted at cwd.
func newApplication(screen tcell.Screen, cwd string, logger *logrus.Logger) *Application {
	log := logging.Component(logger, "app")
	log.WithField("path", cwd).Info("starting")

	actionCh := make(chan statepkg.Action, 10)
	state := statepkg.NewNavigationState(cwd, statepkg.WithLogger(logging.Component(logger, "state")))

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(logging.Component(logger, "reducer")),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		log:      log,
	}
}

// State exposes the navigation state, mainly for inspection after Run.
func (app *Application) State() *statepkg.NavigationState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
