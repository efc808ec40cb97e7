package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(id string) *entity.GameRecord {
	return &entity.GameRecord{
		ID:         id,
		Mode:       "simulated",
		Status:     entity.StatusBotWon,
		PlayerMark: entity.MarkO,
		BotMark:    entity.MarkX,
		Board: entity.Board{
			{entity.MarkX, entity.MarkX, entity.MarkX},
			{entity.MarkO, entity.MarkO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		},
		BotMoves: []entity.MoveKey{
			{Prev: entity.NoMove(), Move: entity.Position{Col: 0, Row: 0}},
			{Prev: entity.MovedTo(entity.Position{Col: 0, Row: 1}), Move: entity.Position{Col: 1, Row: 0}},
			{Prev: entity.MovedTo(entity.Position{Col: 1, Row: 1}), Move: entity.Position{Col: 2, Row: 0}},
		},
		Turns: 5,
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a finished game record
	record := newRecord("run:1")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, record)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game record
		record := newRecord("run:2")

		err := gameRepo.CreateOrUpdate(ctx, record)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrieved, err := gameRepo.GetByID(ctx, record.ID)

		// Then: the retrieved record should match the saved one
		require.NoError(t, err)
		require.Equal(t, record, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrieved.ID)
		assert.Empty(t, retrieved.Status)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game record
		record := newRecord("run:3")

		err := gameRepo.CreateOrUpdate(ctx, record)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, record.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, record.ID)
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		require.Equal(t, ErrGameNotFound, err)
	})
}

func TestDiscardRepository(t *testing.T) {
	// Given: the discard journal
	ctx := context.Background()
	gameRepo := NewDiscardRepository()

	// When: a record is written
	err := gameRepo.CreateOrUpdate(ctx, newRecord("run:4"))
	require.NoError(t, err)

	// Then: nothing can be read back
	_, err = gameRepo.GetByID(ctx, "run:4")
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, gameRepo.DeleteByID(ctx, "run:4"), ErrGameNotFound)
}
