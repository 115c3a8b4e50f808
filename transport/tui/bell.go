package tui

import (
	"errors"
	"sync"
)

var ErrNotRunning = errors.New("terminal ui is not running")

// Bell is the sound beeper of the terminal ui. Strokes are rung on the App's event loop, the
// only goroutine that writes to the screen.
type Bell struct {
	mu  sync.Mutex
	app *App
}

func NewBell() *Bell {
	return &Bell{}
}

// Beep blocks until the stroke was rung or the App stopped.
func (that *Bell) Beep() error {
	that.mu.Lock()
	app := that.app
	that.mu.Unlock()

	if app == nil {
		return ErrNotRunning
	}

	return app.beep()
}

func (that *Bell) attach(app *App) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.app = app
}
