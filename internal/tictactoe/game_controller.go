package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

type MoveKind uint8

const (
	MoveRejected MoveKind = iota
	MoveAcceptedNoWinner
	MoveAcceptedWinner
	MoveAcceptedDraw
)

func (that MoveKind) String() string {
	switch that {
	case MoveAcceptedNoWinner:
		return "accepted"
	case MoveAcceptedWinner:
		return "winner"
	case MoveAcceptedDraw:
		return "draw"
	default:
		return "rejected"
	}
}

// MoveResult is what the presentation layer gets back for a tap.
type MoveResult struct {
	Kind MoveKind
	Row  int
	Col  int
	// Player is the mark that was placed. Empty when rejected.
	Player entity.Cell
	// Line is set only for MoveAcceptedWinner.
	Line entity.WinLine
	// Reason explains a rejection.
	Reason error
}

func (that MoveResult) Accepted() bool {
	return that.Kind != MoveRejected
}

func (that MoveResult) Finished() bool {
	return that.Kind == MoveAcceptedWinner || that.Kind == MoveAcceptedDraw
}

// GameController runs turns on a single board and keeps the session score.
// The board's ended flag is the only terminal state; won tells a win from a draw.
type GameController struct {
	board   *entity.Board
	won     bool
	lastWin entity.WinLine
	score   entity.Score
}

func NewGameController() *GameController {
	return &GameController{
		board: entity.NewBoard(),
	}
}

// AttemptMove places the current player's mark at row, col.
func (that *GameController) AttemptMove(row, col int) MoveResult {
	result := MoveResult{Row: row, Col: col}

	player := that.board.Current()
	if !that.board.PlaceMark(row, col) {
		result.Reason = that.board.Validate(row, col)
		return result
	}
	result.Player = player

	if line, ok := CheckWin(that.board); ok {
		that.board.End()
		that.won = true
		that.lastWin = line
		that.score.Increment(line.Player)

		result.Kind = MoveAcceptedWinner
		result.Line = line

		return result
	}

	if that.board.IsFull() {
		that.board.End()
		result.Kind = MoveAcceptedDraw

		return result
	}

	result.Kind = MoveAcceptedNoWinner

	return result
}

// Reset starts a new game on an empty board. Scores are kept.
func (that *GameController) Reset() {
	that.board.Reset()
	that.won = false
	that.lastWin = entity.WinLine{}
}

// NewMatch starts a new game and zeroes both scores.
func (that *GameController) NewMatch() {
	that.Reset()
	that.score.Reset()
}

// Board exposes the board for reading. Callers must not place marks on it directly.
func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) Status() Status {
	switch {
	case !that.board.Ended():
		return StatusInProgress
	case that.won:
		return StatusWon
	default:
		return StatusDraw
	}
}

func (that *GameController) Score() entity.Score {
	return that.score
}

// LastWin returns the winning line of a won game.
func (that *GameController) LastWin() (entity.WinLine, bool) {
	return that.lastWin, that.won
}
