package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, entity.GridSize) {
	t.Helper()

	gridSize, err := entity.NewGridSize(3)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewManager(logger, nil), gridSize
}

func TestManager_CreateAndGet(t *testing.T) {
	t.Run("Created session is retrievable by ID", func(t *testing.T) {
		// Given: a manager with one session
		manager, gridSize := newTestManager(t)
		sess := manager.Create(gridSize)

		// When: looking the session up
		found, err := manager.Get(sess.ID)

		// Then: the same session comes back
		require.NoError(t, err)
		assert.Same(t, sess, found)
		assert.Equal(t, 1, manager.Len())
	})

	t.Run("Unknown ID returns ErrSessionNotFound", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Get("nope")

		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	// Given: two live sessions
	manager, gridSize := newTestManager(t)
	first := manager.Create(gridSize)
	second := manager.Create(gridSize)

	// When: playing a move in the first session only
	result := first.Service.AttemptMove(entity.GridCoordinate{Row: 0, Col: 0})
	require.True(t, result.Accepted)

	// Then: the second session is untouched
	assert.Empty(t, second.Service.MoveHistory())
	assert.Equal(t, entity.PlayerX, second.Service.CurrentPlayer())
}

func TestManager_Delete(t *testing.T) {
	// Given: two sessions
	manager, gridSize := newTestManager(t)
	first := manager.Create(gridSize)
	second := manager.Create(gridSize)

	// When: deleting the first
	manager.Delete(first.ID)

	// Then: only the second remains
	_, err := manager.Get(first.ID)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)

	_, err = manager.Get(second.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, manager.Len())

	// Deleting again is a no-op
	manager.Delete(first.ID)
	assert.Equal(t, 1, manager.Len())
}
