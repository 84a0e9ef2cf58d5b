package game

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// GameState owns the board, the current player, the status, the winner and
// the move log of one game session. A single goroutine drives it; sessions
// share nothing, so no locking is needed.
type GameState struct {
	gridSize  entity.GridSize
	board     *entity.Board
	validator MoveValidator

	current entity.Player
	status  entity.GameStatus
	winner  entity.Player
	moves   []entity.Move
}

// NewGameState creates a fresh in-progress game with X to move.
func NewGameState(gridSize entity.GridSize) *GameState {
	that := &GameState{
		gridSize:  gridSize,
		board:     entity.NewBoard(gridSize),
		validator: NewMoveValidator(gridSize),
	}
	that.Reset()

	return that
}

// Reset reinitializes the game: all cells empty, empty move log, X to move,
// status in progress, no winner. This is the only way out of a terminal
// status.
func (that *GameState) Reset() {
	that.board.Reset()
	that.current = entity.PlayerX
	that.status = entity.StatusInProgress
	that.winner = entity.PlayerNone
	that.moves = nil
}

// IsValidMove reports whether the coordinate can be played right now.
func (that *GameState) IsValidMove(coord entity.GridCoordinate) bool {
	return that.validator.IsValidMove(that.board, that.status, coord)
}

// ExecuteMove applies the current player's mark at the coordinate. It
// returns false without any state change when the move is invalid. On a
// winning or board-filling move the status turns terminal and the current
// player freezes; otherwise the turn flips to the opponent.
func (that *GameState) ExecuteMove(coord entity.GridCoordinate) bool {
	if !that.IsValidMove(coord) {
		return false
	}

	that.board.Place(coord, that.current)
	that.moves = append(that.moves, entity.NewMove(coord, that.current))

	if winner := CheckWinner(that.board); !winner.IsNone() {
		that.winner = winner
		that.status = entity.WinStatus(winner)
		return true
	}

	if that.validator.IsBoardFull(that.board) {
		that.status = entity.StatusTie
		return true
	}

	that.current = that.current.Opponent()

	return true
}

// ValidMoves lists every playable coordinate, empty once the game is over.
func (that *GameState) ValidMoves() []entity.GridCoordinate {
	if that.status.IsTerminal() {
		return nil
	}

	n := that.gridSize.Size()
	moves := make([]entity.GridCoordinate, 0, that.gridSize.TotalCells()-len(that.moves))

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			coord := entity.GridCoordinate{Row: row, Col: col}
			if that.board.Cell(coord).IsNone() {
				moves = append(moves, coord)
			}
		}
	}

	return moves
}

func (that *GameState) IsTerminal() bool {
	return that.status.IsTerminal()
}

func (that *GameState) GridSize() entity.GridSize {
	return that.gridSize
}

// Board returns a defensive snapshot of the current board.
func (that *GameState) Board() [][]entity.Player {
	return that.board.Copy()
}

// Cell returns the mark at the coordinate, PlayerNone when out of range.
func (that *GameState) Cell(coord entity.GridCoordinate) entity.Player {
	return that.board.Cell(coord)
}

func (that *GameState) CurrentPlayer() entity.Player {
	return that.current
}

func (that *GameState) Status() entity.GameStatus {
	return that.status
}

// Winner is PlayerNone unless the status is a win.
func (that *GameState) Winner() entity.Player {
	return that.winner
}

// Moves returns a copy of the append-only move log.
func (that *GameState) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}
