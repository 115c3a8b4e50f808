package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// scanOrder is the fixed order in which lines are checked: rows, columns, then the
// top-left diagonal before the bottom-left one.
var scanOrder = [...]entity.WinLine{
	{Kind: entity.LineRow, Index: 0},
	{Kind: entity.LineRow, Index: 1},
	{Kind: entity.LineRow, Index: 2},
	{Kind: entity.LineColumn, Index: 0},
	{Kind: entity.LineColumn, Index: 1},
	{Kind: entity.LineColumn, Index: 2},
	{Kind: entity.LineDiagonalNegative},
	{Kind: entity.LineDiagonalPositive},
}

// CheckWin returns the first complete line on the board. A full board without a line is a
// draw and is reported by the board itself, not here.
func CheckWin(board *entity.Board) (entity.WinLine, bool) {
	for _, line := range scanOrder {
		cells := line.Cells()

		a := board.Cell(cells[0].Row, cells[0].Col)
		b := board.Cell(cells[1].Row, cells[1].Col)
		c := board.Cell(cells[2].Row, cells[2].Col)

		if a != entity.Empty && a == b && b == c {
			line.Player = a
			return line, true
		}
	}

	return entity.WinLine{}, false
}
