package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridCoordinate(t *testing.T) {
	t.Run("Constructs coordinate from non-negative components", func(t *testing.T) {
		// When: constructing a coordinate inside the valid domain
		coord, err := NewGridCoordinate(2, 1)

		// Then: it should carry the given row and column
		require.NoError(t, err)
		assert.Equal(t, 2, coord.Row)
		assert.Equal(t, 1, coord.Col)
	})

	t.Run("Rejects negative row", func(t *testing.T) {
		// When: constructing a coordinate with row -1
		_, err := NewGridCoordinate(-1, 0)

		// Then: construction must fail, never silently clamp
		assert.ErrorIs(t, err, apperror.ErrNegativeCoordinate)
	})

	t.Run("Rejects negative column", func(t *testing.T) {
		_, err := NewGridCoordinate(0, -3)

		assert.ErrorIs(t, err, apperror.ErrNegativeCoordinate)
	})

	t.Run("Equality is by value", func(t *testing.T) {
		// Given: two coordinates constructed separately
		a, err := NewGridCoordinate(1, 2)
		require.NoError(t, err)
		b, err := NewGridCoordinate(1, 2)
		require.NoError(t, err)

		// Then: they compare equal
		assert.Equal(t, a, b)
	})
}

func TestNewGridSize(t *testing.T) {
	t.Run("Accepts the default size", func(t *testing.T) {
		size, err := NewGridSize(DefaultGridSize)

		require.NoError(t, err)
		assert.Equal(t, 3, size.Size())
		assert.Equal(t, 9, size.TotalCells())
	})

	t.Run("Accepts the maximum size", func(t *testing.T) {
		// When: constructing a grid of size 10
		size, err := NewGridSize(10)

		// Then: construction succeeds
		require.NoError(t, err)
		assert.Equal(t, 100, size.TotalCells())
	})

	t.Run("Rejects size above the maximum", func(t *testing.T) {
		// When: constructing a grid of size 11
		_, err := NewGridSize(11)

		// Then: construction must fail
		assert.ErrorIs(t, err, apperror.ErrGridSizeTooLarge)
	})

	t.Run("Rejects non-positive size", func(t *testing.T) {
		_, err := NewGridSize(0)
		assert.ErrorIs(t, err, apperror.ErrGridSizeTooSmall)

		_, err = NewGridSize(-2)
		assert.ErrorIs(t, err, apperror.ErrGridSizeTooSmall)
	})
}

func TestGridSize_Contains(t *testing.T) {
	// Given: a 3x3 grid
	size, err := NewGridSize(3)
	require.NoError(t, err)

	t.Run("Contains in-bounds coordinates", func(t *testing.T) {
		assert.True(t, size.Contains(GridCoordinate{Row: 0, Col: 0}))
		assert.True(t, size.Contains(GridCoordinate{Row: 2, Col: 2}))
	})

	t.Run("Excludes out-of-bounds coordinates", func(t *testing.T) {
		assert.False(t, size.Contains(GridCoordinate{Row: 3, Col: 0}))
		assert.False(t, size.Contains(GridCoordinate{Row: 0, Col: 3}))
		assert.False(t, size.Contains(GridCoordinate{Row: -1, Col: 0}))
	})
}
