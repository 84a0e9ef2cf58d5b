package game

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// CheckWinner scans every row, then every column, then the two main
// diagonals, and returns the mark completing the first full line found, or
// PlayerNone when no line is complete. A legal game state holds at most one
// winner, so scan order does not affect the result.
func CheckWinner(board *entity.Board) entity.Player {
	n := board.Size().Size()

	for row := 0; row < n; row++ {
		if winner := lineWinner(board, row, 0, 0, 1); !winner.IsNone() {
			return winner
		}
	}

	for col := 0; col < n; col++ {
		if winner := lineWinner(board, 0, col, 1, 0); !winner.IsNone() {
			return winner
		}
	}

	if winner := lineWinner(board, 0, 0, 1, 1); !winner.IsNone() {
		return winner
	}

	return lineWinner(board, 0, n-1, 1, -1)
}

// lineWinner walks one line of `size` cells from (row, col) in steps of
// (dRow, dCol) and returns its mark if all cells match and none is empty.
func lineWinner(board *entity.Board, row, col, dRow, dCol int) entity.Player {
	first := board.Cell(entity.GridCoordinate{Row: row, Col: col})
	if first.IsNone() {
		return entity.PlayerNone
	}

	n := board.Size().Size()
	for i := 1; i < n; i++ {
		cell := entity.GridCoordinate{Row: row + i*dRow, Col: col + i*dCol}
		if board.Cell(cell) != first {
			return entity.PlayerNone
		}
	}

	return first
}
