// Package tui is the single-screen terminal front end of the board.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

const (
	pageBoard  = "board"
	pageDialog = "dialog"

	buttonPlayAgain = "Play again"
	buttonNewMatch  = "New match"
	buttonQuit      = "Quit"

	helpText = "[::d]click or arrows+enter to play · r play again · n new match · q quit"
)

type gameSession interface {
	Tap(ctx context.Context, row, col int) tictactoe.MoveResult
	PlayAgain(ctx context.Context)
	NewMatch(ctx context.Context)
	Snapshot() usecase.Snapshot
	TurnLabel() string
	ScoreLabel() string
}

// App owns the tview application. All session calls happen on the tview event loop.
type App struct {
	logger  *slog.Logger
	session gameSession

	app    *tview.Application
	pages  *tview.Pages
	board  *BoardView
	status *tview.TextView
	dialog *tview.Modal

	screen  tcell.Screen
	stopped chan struct{}

	ctx context.Context
}

// New builds the ui on screen. A nil screen lets tview open the terminal itself, and the
// bell is then silent. A non-nil bell rings on this App's event loop.
func New(logger *slog.Logger, screen tcell.Screen, session gameSession, palette Palette, bell *Bell) *App {
	that := &App{
		logger:  logger.With("component", "tui"),
		session: session,
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		status:  tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		dialog:  tview.NewModal(),
		screen:  screen,
		stopped: make(chan struct{}),
		ctx:     context.Background(),
	}

	that.board = NewBoardView(session.Snapshot, palette).
		SetTapFunc(that.tap).
		SetKeyFuncs(that.playAgain, that.newMatch, that.quit)

	that.dialog.
		AddButtons([]string{buttonPlayAgain, buttonNewMatch, buttonQuit}).
		SetDoneFunc(that.dialogDone)

	help := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter).SetText(helpText)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.status, 2, 0, false).
		AddItem(that.board, 0, 1, true).
		AddItem(help, 1, 0, false)

	that.pages.
		AddPage(pageBoard, layout, true, true).
		AddPage(pageDialog, that.dialog, true, false)

	if screen != nil {
		that.app.SetScreen(screen)
	}

	that.app.SetRoot(that.pages, true).SetFocus(that.board).EnableMouse(true)
	that.refreshStatus()

	if bell != nil {
		bell.attach(that)
	}

	return that
}

// Run blocks until the user quits or ctx is canceled.
func (that *App) Run(ctx context.Context) error {
	that.ctx = ctx
	defer close(that.stopped)

	stop := context.AfterFunc(ctx, that.app.Stop)
	defer stop()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

func (that *App) beep() error {
	select {
	case <-that.stopped:
		return ErrNotRunning
	default:
	}

	rung := make(chan error, 1)
	go that.app.QueueUpdate(func() {
		rung <- that.ring()
	})

	select {
	case err := <-rung:
		return err
	case <-that.stopped:
		return ErrNotRunning
	}
}

// ring runs on the event loop. Stop finalizes the screen from another goroutine under the
// application lock, so the bell takes it too.
func (that *App) ring() error {
	that.app.Lock()
	defer that.app.Unlock()

	if that.screen == nil {
		return nil
	}

	if err := that.screen.Beep(); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}

	return nil
}

func (that *App) tap(row, col int) {
	result := that.session.Tap(that.ctx, row, col)
	if !result.Accepted() {
		return
	}

	that.refreshStatus()

	if result.Finished() {
		that.showDialog()
	}
}

func (that *App) playAgain() {
	that.session.PlayAgain(that.ctx)
	that.refreshStatus()
}

func (that *App) newMatch() {
	that.session.NewMatch(that.ctx)
	that.refreshStatus()
}

func (that *App) quit() {
	that.logger.Debug("quit requested")
	that.app.Stop()
}

func (that *App) showDialog() {
	that.dialog.SetText(that.session.TurnLabel() + "\n\n" + that.session.ScoreLabel())
	that.pages.ShowPage(pageDialog)
	that.app.SetFocus(that.dialog)
}

func (that *App) dialogDone(_ int, label string) {
	that.pages.HidePage(pageDialog)
	that.app.SetFocus(that.board)

	switch label {
	case buttonPlayAgain:
		that.playAgain()
	case buttonNewMatch:
		that.newMatch()
	case buttonQuit:
		that.quit()
	}
}

func (that *App) refreshStatus() {
	that.status.SetText(fmt.Sprintf("[::b]%s[::-]\n%s",
		tview.Escape(that.session.TurnLabel()),
		tview.Escape(that.session.ScoreLabel()),
	))
}
