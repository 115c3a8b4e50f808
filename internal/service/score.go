package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type ScoreService interface {
	Publish(ctx context.Context, sessionID string, score entity.Score) error
	GetBySessionID(ctx context.Context, sessionID string) (entity.Score, error)
	Clear(ctx context.Context, sessionID string) error
}

type scoreRepo interface {
	Save(ctx context.Context, sessionID string, score entity.Score) error
	GetByID(ctx context.Context, sessionID string) (entity.Score, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type scoreService struct {
	scoreRepo scoreRepo
}

func NewScoreService(scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

func (that *scoreService) Publish(ctx context.Context, sessionID string, score entity.Score) error {
	if err := that.scoreRepo.Save(ctx, sessionID, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}

// GetBySessionID returns a zero score for a session that has not published anything yet.
func (that *scoreService) GetBySessionID(ctx context.Context, sessionID string) (entity.Score, error) {
	score, err := that.scoreRepo.GetByID(ctx, sessionID)
	if errors.Is(err, apperror.ErrScoreNotFound) {
		return entity.Score{}, nil
	}

	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

// Clear removes the published score. A session that never published is not an error.
func (that *scoreService) Clear(ctx context.Context, sessionID string) error {
	err := that.scoreRepo.DeleteByID(ctx, sessionID)
	if err != nil && !errors.Is(err, apperror.ErrScoreNotFound) {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	return nil
}
