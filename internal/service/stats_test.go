package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRecorder(t *testing.T) {
	t.Run("Counts results by final status", func(t *testing.T) {
		// Given: a fresh recorder
		recorder := NewStatsRecorder(testLogger())

		// When: recording a mix of outcomes
		recorder.RecordResult(entity.StatusXWins)
		recorder.RecordResult(entity.StatusXWins)
		recorder.RecordResult(entity.StatusOWins)
		recorder.RecordResult(entity.StatusTie)

		// Then: the snapshot reflects every completed game
		stats := recorder.Snapshot()
		assert.Equal(t, 4, stats.Completed)
		assert.Equal(t, 2, stats.XWins)
		assert.Equal(t, 1, stats.OWins)
		assert.Equal(t, 1, stats.Ties)
	})

	t.Run("Ignores non-terminal statuses", func(t *testing.T) {
		recorder := NewStatsRecorder(testLogger())

		recorder.RecordResult(entity.StatusInProgress)

		assert.Equal(t, Stats{}, recorder.Snapshot())
	})
}

func TestCalculateMetrics(t *testing.T) {
	gridSize, err := entity.NewGridSize(3)
	require.NoError(t, err)

	t.Run("Untouched game has zero metrics", func(t *testing.T) {
		state := game.NewGameState(gridSize)

		metrics := CalculateMetrics(state)

		assert.Equal(t, 0, metrics.TotalMoves)
		assert.Equal(t, 9, metrics.EmptyCells)
		assert.Zero(t, metrics.FillRatio)
		assert.Zero(t, metrics.XDominance)
	})

	t.Run("Splits moves per player", func(t *testing.T) {
		// Given: three moves, two by X and one by O
		state := game.NewGameState(gridSize)
		require.True(t, state.ExecuteMove(coord(0, 0)))
		require.True(t, state.ExecuteMove(coord(1, 1)))
		require.True(t, state.ExecuteMove(coord(2, 2)))

		// When: calculating metrics
		metrics := CalculateMetrics(state)

		// Then: counts, fill ratio and dominance shares line up
		assert.Equal(t, 3, metrics.TotalMoves)
		assert.Equal(t, 2, metrics.XMoves)
		assert.Equal(t, 1, metrics.OMoves)
		assert.Equal(t, 6, metrics.EmptyCells)
		assert.InDelta(t, 3.0/9.0, metrics.FillRatio, 1e-9)
		assert.InDelta(t, 200.0/3.0, metrics.XDominance, 1e-9)
		assert.InDelta(t, 100.0/3.0, metrics.ODominance, 1e-9)
	})
}
