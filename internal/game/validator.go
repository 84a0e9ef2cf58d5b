package game

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// MoveValidator checks candidate moves against board state and game phase.
type MoveValidator struct {
	gridSize entity.GridSize
}

func NewMoveValidator(gridSize entity.GridSize) MoveValidator {
	return MoveValidator{gridSize: gridSize}
}

// IsValidMove reports whether the coordinate targets an empty in-bounds cell
// of a game that is still in progress.
func (that MoveValidator) IsValidMove(board *entity.Board, status entity.GameStatus, coord entity.GridCoordinate) bool {
	if status.IsTerminal() {
		return false
	}

	if !that.gridSize.Contains(coord) {
		return false
	}

	return board.Cell(coord).IsNone()
}

// IsBoardFull reports whether no empty cell remains. Callers must check for
// a winner first: a move that completes a line and fills the board is a win,
// never a tie.
func (that MoveValidator) IsBoardFull(board *entity.Board) bool {
	n := that.gridSize.Size()

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if board.Cell(entity.GridCoordinate{Row: row, Col: col}).IsNone() {
				return false
			}
		}
	}

	return true
}
