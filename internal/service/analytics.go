package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

// GameMetrics describes one game, live or finished.
type GameMetrics struct {
	TotalMoves int
	XMoves     int
	OMoves     int
	EmptyCells int

	// FillRatio is moves played over total cells, 0 for an untouched board.
	FillRatio float64

	// Dominance is each player's share of the played moves, in percent.
	XDominance float64
	ODominance float64
}

// CalculateMetrics derives move and dominance metrics from the game's move
// log. Pure computation, nothing is stored.
func CalculateMetrics(state *game.GameState) GameMetrics {
	moves := state.Moves()

	metrics := GameMetrics{
		TotalMoves: len(moves),
		EmptyCells: state.GridSize().TotalCells() - len(moves),
	}

	for _, move := range moves {
		if move.Player == entity.PlayerX {
			metrics.XMoves++
		} else {
			metrics.OMoves++
		}
	}

	if metrics.TotalMoves == 0 {
		return metrics
	}

	metrics.FillRatio = float64(metrics.TotalMoves) / float64(state.GridSize().TotalCells())
	metrics.XDominance = float64(metrics.XMoves) / float64(metrics.TotalMoves) * 100
	metrics.ODominance = float64(metrics.OMoves) / float64(metrics.TotalMoves) * 100

	return metrics
}
