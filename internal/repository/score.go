package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const scoreKeyPrefix = "score:"

type ScoreRepository interface {
	Save(ctx context.Context, sessionID string, score entity.Score) error
	GetByID(ctx context.Context, sessionID string) (entity.Score, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository stores session scores in redis. Keys expire after ttl so a tally never
// outlives its session; zero ttl keeps keys until DeleteByID.
func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScore) Save(ctx context.Context, sessionID string, score entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, scoreKeyPrefix+sessionID, scoreJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) GetByID(ctx context.Context, sessionID string) (entity.Score, error) {
	response, err := that.client.Get(ctx, scoreKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return entity.Score{}, apperror.ErrScoreNotFound
	}

	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score by id: %w", err)
	}

	var score entity.Score
	if err = json.Unmarshal([]byte(response), &score); err != nil {
		return entity.Score{}, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return score, nil
}

func (that *dbScore) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, scoreKeyPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete score by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrScoreNotFound
	}

	return nil
}
