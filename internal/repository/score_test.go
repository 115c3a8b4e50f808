package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
)

func TestScoreRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(st.Redis, time.Minute)

	// When: a score is saved
	err := scoreRepo.Save(ctx, "session-1", entity.Score{X: 2, O: 1})

	// Then: no error and the key carries the ttl
	require.NoError(t, err)

	ttl, err := st.Redis.TTL(ctx, "score:session-1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestScoreRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Redis, time.Minute)

		// Given: a saved score
		require.NoError(t, scoreRepo.Save(ctx, "session-1", entity.Score{X: 3}))

		// When: it is read back
		score, err := scoreRepo.GetByID(ctx, "session-1")

		// Then: it matches
		require.NoError(t, err)
		assert.Equal(t, entity.Score{X: 3}, score)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Redis, time.Minute)

		// When: an unknown session is read
		score, err := scoreRepo.GetByID(ctx, "missing")

		// Then: ErrScoreNotFound and an empty score
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
		assert.Equal(t, entity.Score{}, score)
	})
}

func TestScoreRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Redis, 0)

		// Given: a saved score
		require.NoError(t, scoreRepo.Save(ctx, "session-1", entity.Score{O: 1}))

		// When: it is deleted
		err := scoreRepo.DeleteByID(ctx, "session-1")

		// Then: it is gone
		require.NoError(t, err)

		_, err = scoreRepo.GetByID(ctx, "session-1")
		assert.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Redis, 0)

		err := scoreRepo.DeleteByID(ctx, "missing")

		assert.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})
}

func TestMemoryScoreRepository(t *testing.T) {
	ctx := context.Background()
	scoreRepo := NewMemoryScoreRepository()

	t.Run("Unknown session is not found", func(t *testing.T) {
		_, err := scoreRepo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrScoreNotFound)
		assert.ErrorIs(t, scoreRepo.DeleteByID(ctx, "missing"), apperror.ErrScoreNotFound)
	})

	t.Run("Save overwrites and delete removes", func(t *testing.T) {
		// Given: two saves for the same session
		require.NoError(t, scoreRepo.Save(ctx, "s", entity.Score{X: 1}))
		require.NoError(t, scoreRepo.Save(ctx, "s", entity.Score{X: 1, O: 1}))

		// Then: the latest wins
		score, err := scoreRepo.GetByID(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, entity.Score{X: 1, O: 1}, score)

		// When: deleted
		require.NoError(t, scoreRepo.DeleteByID(ctx, "s"))

		// Then: gone
		_, err = scoreRepo.GetByID(ctx, "s")
		assert.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})
}
