package game

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Playable is the minimal surface a move-driving consumer needs: apply a
// move, enumerate legal moves, detect the end of the game.
type Playable interface {
	ExecuteMove(coord entity.GridCoordinate) bool
	ValidMoves() []entity.GridCoordinate
	IsTerminal() bool
}

var _ Playable = (*GameState)(nil)
