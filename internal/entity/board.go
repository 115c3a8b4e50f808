package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const BoardSize = 3

// Board is the 3x3 grid stored row-major together with the player to move.
// The number of non-empty cells always equals the number of accepted moves.
type Board struct {
	cells   [BoardSize][BoardSize]Cell
	current Cell
	moves   int
	ended   bool
}

func NewBoard() *Board {
	return &Board{current: PlayerX}
}

// Validate reports why a mark could not be placed at row, col.
func (that *Board) Validate(row, col int) error {
	if that.ended {
		return apperror.ErrGameFinished
	}

	if !InRange(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.cells[row][col] != Empty {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// PlaceMark puts the current player's mark on row, col and passes the turn.
// It returns false and leaves the board untouched when the move is not allowed.
func (that *Board) PlaceMark(row, col int) bool {
	if that.Validate(row, col) != nil {
		return false
	}

	that.cells[row][col] = that.current
	that.current = that.current.Opponent()
	that.moves++

	return true
}

func (that *Board) Cell(row, col int) Cell {
	if !InRange(row, col) {
		return Empty
	}
	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize][BoardSize]Cell {
	return that.cells
}

func (that *Board) Current() Cell {
	return that.current
}

func (that *Board) Moves() int {
	return that.moves
}

func (that *Board) IsFull() bool {
	return that.moves == BoardSize*BoardSize
}

func (that *Board) Ended() bool {
	return that.ended
}

// End locks the board against further marks until Reset.
func (that *Board) End() {
	that.ended = true
}

func (that *Board) Reset() {
	*that = Board{current: PlayerX}
}

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
