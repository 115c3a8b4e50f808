package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/sound"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

type scoreService interface {
	Publish(ctx context.Context, sessionID string, score entity.Score) error
	Clear(ctx context.Context, sessionID string) error
}

type soundPlayer interface {
	Play(effect sound.Effect)
}

type metricsRecorder interface {
	ObserveMove(result string, movesOnBoard int)
	ObserveGameFinished(outcome string)
	ObserveReset()
}

// Snapshot is everything the screen needs to redraw.
type Snapshot struct {
	Cells   [entity.BoardSize][entity.BoardSize]entity.Cell
	Current entity.Player
	Status  tictactoe.Status
	Line    entity.WinLine
	Won     bool
	Score   entity.Score
	Players [2]entity.Player
}

// GameSession drives one board for the lifetime of the process.
type GameSession struct {
	id     string
	logger *slog.Logger

	controller *tictactoe.GameController
	players    [2]entity.Player

	scoreService scoreService
	sounds       soundPlayer
	metrics      metricsRecorder
}

func NewGameSession(
	logger *slog.Logger,
	players [2]entity.Player,
	scoreService scoreService,
	sounds soundPlayer,
	metrics metricsRecorder,
) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		id:           id,
		logger:       logger.With("component", "session", "sessionID", id),
		controller:   tictactoe.NewGameController(),
		players:      players,
		scoreService: scoreService,
		sounds:       sounds,
		metrics:      metrics,
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// Tap plays the cell at row, col for the player to move.
func (that *GameSession) Tap(ctx context.Context, row, col int) tictactoe.MoveResult {
	log := that.logger.With("method", "Tap", "row", row, "col", col)

	result := that.controller.AttemptMove(row, col)
	that.metrics.ObserveMove(result.Kind.String(), that.controller.Board().Moves())

	switch result.Kind {
	case tictactoe.MoveRejected:
		log.Debug("move rejected", "reason", result.Reason)

	case tictactoe.MoveAcceptedNoWinner:
		that.sounds.Play(sound.EffectMark)

	case tictactoe.MoveAcceptedWinner:
		that.sounds.Play(sound.EffectWin)
		that.metrics.ObserveGameFinished(strings.ToLower(result.Line.Player.String()))

		log.Info("game won",
			"winner", that.player(result.Line.Player).Name,
			"line", result.Line.Kind.String(),
			"index", result.Line.Index,
		)

		that.publishScore(ctx)

	case tictactoe.MoveAcceptedDraw:
		that.sounds.Play(sound.EffectDraw)
		that.metrics.ObserveGameFinished("draw")

		log.Info("game ended in a draw")
	}

	return result
}

// PlayAgain clears the board and keeps the score.
func (that *GameSession) PlayAgain(_ context.Context) {
	that.controller.Reset()
	that.metrics.ObserveReset()

	that.logger.Debug("board reset", "method", "PlayAgain")
}

// NewMatch clears the board and both scores.
func (that *GameSession) NewMatch(ctx context.Context) {
	that.controller.NewMatch()
	that.metrics.ObserveReset()

	that.logger.Info("new match started", "method", "NewMatch")

	that.publishScore(ctx)
}

// Close drops the published score; a tally never outlives its session.
func (that *GameSession) Close(ctx context.Context) error {
	if err := that.scoreService.Clear(ctx, that.id); err != nil {
		return fmt.Errorf("failed to clear session score: %w", err)
	}

	return nil
}

func (that *GameSession) Snapshot() Snapshot {
	board := that.controller.Board()
	line, won := that.controller.LastWin()

	return Snapshot{
		Cells:   board.Cells(),
		Current: that.player(board.Current()),
		Status:  that.controller.Status(),
		Line:    line,
		Won:     won,
		Score:   that.controller.Score(),
		Players: that.players,
	}
}

// TurnLabel is the one-line game state shown above the board.
func (that *GameSession) TurnLabel() string {
	snapshot := that.Snapshot()

	switch snapshot.Status {
	case tictactoe.StatusWon:
		return that.player(snapshot.Line.Player).Name + " wins!"
	case tictactoe.StatusDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("%s's turn (%s)", snapshot.Current.Name, snapshot.Current.Mark)
	}
}

// ScoreLabel renders the tally as "Alice 2 - 1 Bob".
func (that *GameSession) ScoreLabel() string {
	score := that.controller.Score()

	return fmt.Sprintf("%s %d - %d %s",
		that.players[0].Name, score.Of(that.players[0].Mark),
		score.Of(that.players[1].Mark), that.players[1].Name,
	)
}

func (that *GameSession) player(mark entity.Cell) entity.Player {
	for _, player := range that.players {
		if player.Mark == mark {
			return player
		}
	}

	return entity.Player{Name: mark.String(), Mark: mark}
}

func (that *GameSession) publishScore(ctx context.Context) {
	if err := that.scoreService.Publish(ctx, that.id, that.controller.Score()); err != nil {
		that.logger.Error("failed to publish score", "method", "publishScore", "error", err)
	}
}
