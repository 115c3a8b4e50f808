package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type memoryScore struct {
	mu     sync.RWMutex
	scores map[string]entity.Score
}

// NewMemoryScoreRepository keeps scores in process memory. Used when redis is disabled.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScore) Save(_ context.Context, sessionID string, score entity.Score) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[sessionID] = score

	return nil
}

func (that *memoryScore) GetByID(_ context.Context, sessionID string) (entity.Score, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	score, ok := that.scores[sessionID]
	if !ok {
		return entity.Score{}, apperror.ErrScoreNotFound
	}

	return score, nil
}

func (that *memoryScore) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.scores[sessionID]; !ok {
		return apperror.ErrScoreNotFound
	}

	delete(that.scores, sessionID)

	return nil
}
