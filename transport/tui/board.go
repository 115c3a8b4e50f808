package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

// Palette holds the board colours.
type Palette struct {
	Board   tcell.Color
	X       tcell.Color
	O       tcell.Color
	WinLine tcell.Color
}

// BoardView draws the grid, the markers and the winning line, and turns clicks and key
// presses into taps on a cell.
type BoardView struct {
	*tview.Box

	snapshot func() usecase.Snapshot
	palette  Palette

	cursor entity.Position

	onTap   func(row, col int)
	onReset func()
	onNew   func()
	onQuit  func()
}

func NewBoardView(snapshot func() usecase.Snapshot, palette Palette) *BoardView {
	return &BoardView{
		Box:      tview.NewBox(),
		snapshot: snapshot,
		palette:  palette,
		cursor:   entity.Position{Row: 1, Col: 1},
		onTap:    func(int, int) {},
		onReset:  func() {},
		onNew:    func() {},
		onQuit:   func() {},
	}
}

func (that *BoardView) SetTapFunc(handler func(row, col int)) *BoardView {
	that.onTap = handler
	return that
}

// SetKeyFuncs sets what the play-again, new-match and quit keys do.
func (that *BoardView) SetKeyFuncs(reset, newMatch, quit func()) *BoardView {
	that.onReset, that.onNew, that.onQuit = reset, newMatch, quit
	return that
}

func (that *BoardView) Cursor() entity.Position {
	return that.cursor
}

func (that *BoardView) Layout() Layout {
	return NewLayout(that.GetInnerRect())
}

// fittingLayout reports false when the grid does not fit into the view.
func (that *BoardView) fittingLayout() (Layout, bool) {
	x, y, width, height := that.GetInnerRect()
	layout := NewLayout(x, y, width, height)

	return layout, layout.Fits(x, y, width, height)
}

func (that *BoardView) Draw(screen tcell.Screen) {
	that.Box.DrawForSubclass(screen, that)

	layout, ok := that.fittingLayout()
	if !ok {
		return
	}
	snapshot := that.snapshot()

	that.drawGrid(screen, layout)

	if snapshot.Won {
		that.drawWinningLine(screen, layout, snapshot.Line)
	}

	that.drawMarkers(screen, layout, snapshot)
}

func (that *BoardView) drawGrid(screen tcell.Screen, layout Layout) {
	style := tcell.StyleDefault.Foreground(that.palette.Board)

	for k := 1; k < entity.BoardSize; k++ {
		x := layout.X + k*layout.CellWidth
		for y := layout.Y; y < layout.Y+layout.Height(); y++ {
			screen.SetContent(x, y, tview.BoxDrawingsLightVertical, nil, style)
		}

		y := layout.Y + k*layout.CellHeight
		for x := layout.X; x < layout.X+layout.Width(); x++ {
			r := tview.BoxDrawingsLightHorizontal
			if (x-layout.X)%layout.CellWidth == 0 && x != layout.X {
				r = tview.BoxDrawingsLightVerticalAndHorizontal
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (that *BoardView) drawWinningLine(screen tcell.Screen, layout Layout, line entity.WinLine) {
	style := tcell.StyleDefault.Foreground(that.palette.WinLine).Bold(true)

	var r rune
	switch line.Kind {
	case entity.LineRow:
		r = tview.BoxDrawingsHeavyHorizontal
	case entity.LineColumn:
		r = tview.BoxDrawingsHeavyVertical
	case entity.LineDiagonalNegative:
		r = '╲'
	case entity.LineDiagonalPositive:
		r = '╱'
	}

	for _, p := range Points(layout.Segment(line)) {
		screen.SetContent(p[0], p[1], r, nil, style)
	}
}

func (that *BoardView) drawMarkers(screen tcell.Screen, layout Layout, snapshot usecase.Snapshot) {
	showCursor := that.HasFocus() && snapshot.Status == tictactoe.StatusInProgress

	for row := range snapshot.Cells {
		for col, cell := range snapshot.Cells[row] {
			x, y := layout.Center(row, col)

			style := tcell.StyleDefault
			mark := []rune(cell.String())[0]

			switch cell {
			case entity.PlayerX:
				style = style.Foreground(that.palette.X).Bold(true)
			case entity.PlayerO:
				style = style.Foreground(that.palette.O).Bold(true)
			}

			switch {
			case snapshot.Won && snapshot.Line.Contains(row, col):
				style = style.Background(that.palette.WinLine).Foreground(tcell.ColorBlack)
			case showCursor && that.cursor == (entity.Position{Row: row, Col: col}):
				style = style.Reverse(true)
			case cell == entity.Empty:
				continue
			}

			screen.SetContent(x, y, mark, nil, style)
		}
	}
}

func (that *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return that.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !that.InRect(x, y) {
			return false, nil
		}

		if action != tview.MouseLeftClick {
			return false, nil
		}

		setFocus(that)

		layout, ok := that.fittingLayout()
		if !ok {
			return true, nil
		}

		row, col, ok := layout.CellAt(x, y)
		if !ok {
			return true, nil
		}

		that.cursor = entity.Position{Row: row, Col: col}
		that.onTap(row, col)

		return true, nil
	})
}

func (that *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return that.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			that.moveCursor(-1, 0)
		case tcell.KeyDown:
			that.moveCursor(1, 0)
		case tcell.KeyLeft:
			that.moveCursor(0, -1)
		case tcell.KeyRight:
			that.moveCursor(0, 1)
		case tcell.KeyEnter:
			that.onTap(that.cursor.Row, that.cursor.Col)
		case tcell.KeyEscape:
			that.onQuit()
		case tcell.KeyRune:
			switch event.Rune() {
			case ' ':
				that.onTap(that.cursor.Row, that.cursor.Col)
			case 'r':
				that.onReset()
			case 'n':
				that.onNew()
			case 'q':
				that.onQuit()
			}
		}
	})
}

func (that *BoardView) moveCursor(dRow, dCol int) {
	row := that.cursor.Row + dRow
	col := that.cursor.Col + dCol

	if entity.InRange(row, col) {
		that.cursor = entity.Position{Row: row, Col: col}
	}
}
