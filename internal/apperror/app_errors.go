package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrOutOfRange    = errors.New("cell is out of range")
	ErrScoreNotFound = errors.New("score not found")
)
