package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type move struct {
	row, col int
}

func play(t *testing.T, controller *GameController, moves ...move) MoveResult {
	t.Helper()

	var result MoveResult
	for i, m := range moves {
		result = controller.AttemptMove(m.row, m.col)
		require.True(t, result.Accepted(), "move %d (%d,%d) rejected: %v", i, m.row, m.col, result.Reason)
	}

	return result
}

func TestNewGameController(t *testing.T) {
	// When: a controller is created
	controller := NewGameController()

	// Then: the game is in progress on an empty board with no score
	assert.Equal(t, StatusInProgress, controller.Status())
	assert.Equal(t, entity.PlayerX, controller.Board().Current())
	assert.Zero(t, controller.Board().Moves())
	assert.Equal(t, entity.Score{}, controller.Score())

	_, won := controller.LastWin()
	assert.False(t, won)
}

func TestGameController_AttemptMove(t *testing.T) {
	t.Run("Non-winning move keeps the game going", func(t *testing.T) {
		controller := NewGameController()

		result := controller.AttemptMove(0, 0)

		assert.Equal(t, MoveResult{Kind: MoveAcceptedNoWinner, Row: 0, Col: 0, Player: entity.PlayerX}, result)
		assert.Equal(t, StatusInProgress, controller.Status())
		assert.Equal(t, entity.PlayerO, controller.Board().Current())
	})

	t.Run("Row 0 win", func(t *testing.T) {
		// Given: X:(0,0) O:(1,1) X:(0,1) O:(2,2)
		controller := NewGameController()
		play(t, controller, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2})

		// When: X completes row 0
		result := controller.AttemptMove(0, 2)

		// Then: X wins on row 0 and scores one point
		require.Equal(t, MoveAcceptedWinner, result.Kind)
		assert.Equal(t, entity.WinLine{Kind: entity.LineRow, Index: 0, Player: entity.PlayerX}, result.Line)
		assert.Equal(t, entity.PlayerX, result.Player)
		assert.Equal(t, StatusWon, controller.Status())
		assert.Equal(t, entity.Score{X: 1}, controller.Score())

		line, won := controller.LastWin()
		assert.True(t, won)
		assert.Equal(t, result.Line, line)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: X,O,X / X,O,O / O,X,X played one cell at a time
		controller := NewGameController()
		result := play(t, controller,
			move{0, 0}, // X
			move{0, 1}, // O
			move{0, 2}, // X
			move{1, 1}, // O
			move{1, 0}, // X
			move{1, 2}, // O
			move{2, 1}, // X
			move{2, 0}, // O
			move{2, 2}, // X
		)

		// Then: the last move reports a draw and nobody scores
		assert.Equal(t, MoveAcceptedDraw, result.Kind)
		assert.Equal(t, StatusDraw, controller.Status())
		assert.Equal(t, entity.Score{}, controller.Score())
		assert.True(t, controller.Board().IsFull())
	})

	t.Run("Winning ninth move is a win, not a draw", func(t *testing.T) {
		// Given: eight moves that leave X one cell short of the top-left diagonal
		controller := NewGameController()
		play(t, controller,
			move{0, 0}, // X
			move{0, 1}, // O
			move{0, 2}, // X
			move{1, 0}, // O
			move{1, 1}, // X
			move{1, 2}, // O
			move{2, 1}, // X
			move{2, 0}, // O
		)

		// When: X fills the last cell
		result := controller.AttemptMove(2, 2)

		// Then: the diagonal wins even though the board is full
		assert.Equal(t, MoveAcceptedWinner, result.Kind)
		assert.Equal(t, entity.WinLine{Kind: entity.LineDiagonalNegative, Player: entity.PlayerX}, result.Line)
		assert.True(t, controller.Board().IsFull())
		assert.Equal(t, StatusWon, controller.Status())
	})

	t.Run("Occupied cell is rejected without side effects", func(t *testing.T) {
		controller := NewGameController()
		play(t, controller, move{1, 1})
		before := *controller.Board()

		result := controller.AttemptMove(1, 1)

		assert.Equal(t, MoveRejected, result.Kind)
		assert.ErrorIs(t, result.Reason, apperror.ErrCellOccupied)
		assert.Equal(t, entity.Empty, result.Player)
		assert.Equal(t, before, *controller.Board())
	})

	t.Run("Out of range is rejected", func(t *testing.T) {
		controller := NewGameController()

		result := controller.AttemptMove(3, -1)

		assert.Equal(t, MoveRejected, result.Kind)
		assert.ErrorIs(t, result.Reason, apperror.ErrOutOfRange)
	})

	t.Run("Moves after a win are rejected until reset", func(t *testing.T) {
		// Given: a won game
		controller := NewGameController()
		play(t, controller, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

		// When: O tries to keep playing
		result := controller.AttemptMove(2, 0)

		// Then: the move is rejected as finished
		assert.Equal(t, MoveRejected, result.Kind)
		assert.ErrorIs(t, result.Reason, apperror.ErrGameFinished)
		assert.Equal(t, 5, controller.Board().Moves())
	})
}

func TestGameController_Reset(t *testing.T) {
	// Given: X won one game
	controller := NewGameController()
	play(t, controller, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

	// When: the game is reset
	controller.Reset()

	// Then: board is empty and in progress, score survives
	assert.Equal(t, StatusInProgress, controller.Status())
	assert.Zero(t, controller.Board().Moves())
	assert.Equal(t, entity.PlayerX, controller.Board().Current())
	assert.Equal(t, entity.Score{X: 1}, controller.Score())

	_, won := controller.LastWin()
	assert.False(t, won)

	// And: play is possible again
	assert.Equal(t, MoveAcceptedNoWinner, controller.AttemptMove(0, 0).Kind)
}

func TestGameController_NewMatch(t *testing.T) {
	// Given: O won a game
	controller := NewGameController()
	play(t, controller, move{0, 0}, move{1, 0}, move{2, 2}, move{1, 1}, move{0, 1}, move{1, 2})
	require.Equal(t, entity.Score{O: 1}, controller.Score())

	// When: a new match starts
	controller.NewMatch()

	// Then: both scores are zero and the board is empty
	assert.Equal(t, entity.Score{}, controller.Score())
	assert.Zero(t, controller.Board().Moves())
	assert.Equal(t, StatusInProgress, controller.Status())
}

func TestGameController_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		moves []move
		row   int
		col   int
		want  error
	}{
		{name: "Out of range", row: -1, col: 0, want: apperror.ErrOutOfRange},
		{name: "Occupied", moves: []move{{2, 2}}, row: 2, col: 2, want: apperror.ErrCellOccupied},
		{
			name:  "Finished",
			moves: []move{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}},
			row:   2,
			col:   0,
			want:  apperror.ErrGameFinished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			controller := NewGameController()
			if len(tt.moves) > 0 {
				play(t, controller, tt.moves...)
			}
			before := *controller.Board()

			// When
			result := controller.AttemptMove(tt.row, tt.col)

			// Then: a rejection always says why and leaves the board alone
			assert.Equal(t, MoveRejected, result.Kind)
			require.Error(t, result.Reason)
			assert.ErrorIs(t, result.Reason, tt.want)
			assert.Equal(t, entity.Empty, result.Player)
			assert.Equal(t, before, *controller.Board())
		})
	}
}

func TestGameController_Status(t *testing.T) {
	t.Run("Won game ends the board", func(t *testing.T) {
		controller := NewGameController()
		play(t, controller, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

		assert.True(t, controller.Board().Ended())
		assert.Equal(t, StatusWon, controller.Status())
	})

	t.Run("Draw ends the board without a win", func(t *testing.T) {
		controller := NewGameController()
		play(t, controller,
			move{0, 0}, move{0, 1}, move{0, 2},
			move{1, 1}, move{1, 0}, move{1, 2},
			move{2, 1}, move{2, 0}, move{2, 2},
		)

		assert.True(t, controller.Board().Ended())
		assert.Equal(t, StatusDraw, controller.Status())
		_, won := controller.LastWin()
		assert.False(t, won)
	})

	t.Run("Reset reopens the board", func(t *testing.T) {
		controller := NewGameController()
		play(t, controller, move{0, 0}, move{1, 1}, move{0, 1}, move{2, 2}, move{0, 2})

		controller.Reset()

		assert.False(t, controller.Board().Ended())
		assert.Equal(t, StatusInProgress, controller.Status())
	})
}
