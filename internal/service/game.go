package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

// Rejection and status messages surfaced to callers. Invalid moves are
// ordinary outcomes, never errors.
const (
	msgGameFinished = "Game is already finished"
	msgInvalidMove  = "Invalid move: cell is occupied or out of bounds"
	msgGameEnded    = "Move successful: Game ended"
	msgTieGame      = "It's a Tie!"
)

// MoveResult is the structured outcome of a move attempt.
type MoveResult struct {
	Accepted bool
	Message  string
}

// GameRecorder observes the final status of a completed game.
type GameRecorder interface {
	RecordResult(status entity.GameStatus)
}

type GameService interface {
	AttemptMove(coord entity.GridCoordinate) MoveResult
	StartNewGame() *game.GameState

	GameState() *game.GameState
	CurrentPlayer() entity.Player
	Status() entity.GameStatus
	Winner() entity.Player
	MoveHistory() []entity.Move

	IsGameOver() bool
	CanRestart() bool
	StatusMessage() string
}

type gameService struct {
	logger *slog.Logger

	state    *game.GameState
	recorder GameRecorder
}

// NewGameService wraps a game state with the request/response façade. The
// recorder may be nil when nobody observes finished games.
func NewGameService(logger *slog.Logger, state *game.GameState, recorder GameRecorder) GameService {
	return &gameService{
		logger:   logger.With("component", "game_service"),
		state:    state,
		recorder: recorder,
	}
}

// AttemptMove rejects moves on a finished game before touching the board,
// delegates to the state machine, and reports the new situation on success.
func (that *gameService) AttemptMove(coord entity.GridCoordinate) MoveResult {
	if that.state.IsTerminal() {
		return MoveResult{Accepted: false, Message: msgGameFinished}
	}

	if !that.state.ExecuteMove(coord) {
		return MoveResult{Accepted: false, Message: msgInvalidMove}
	}

	if that.state.IsTerminal() {
		that.logger.Info("game finished",
			"status", string(that.state.Status()),
			"moves", len(that.state.Moves()),
		)

		if that.recorder != nil {
			that.recorder.RecordResult(that.state.Status())
		}

		return MoveResult{Accepted: true, Message: msgGameEnded}
	}

	return MoveResult{
		Accepted: true,
		Message:  fmt.Sprintf("Move successful: %s", that.state.CurrentPlayer()),
	}
}

// StartNewGame resets the game and returns the fresh state. Callers that
// guard against accidental restarts check CanRestart first.
func (that *gameService) StartNewGame() *game.GameState {
	that.state.Reset()
	that.logger.Debug("started new game", "grid_size", that.state.GridSize().Size())

	return that.state
}

func (that *gameService) GameState() *game.GameState {
	return that.state
}

func (that *gameService) CurrentPlayer() entity.Player {
	return that.state.CurrentPlayer()
}

func (that *gameService) Status() entity.GameStatus {
	return that.state.Status()
}

func (that *gameService) Winner() entity.Player {
	return that.state.Winner()
}

func (that *gameService) MoveHistory() []entity.Move {
	return that.state.Moves()
}

func (that *gameService) IsGameOver() bool {
	return that.state.IsTerminal()
}

// CanRestart is true only once the game is over; restarting mid-game is
// disallowed so an accidental trigger cannot wipe a live game.
func (that *gameService) CanRestart() bool {
	return that.state.IsTerminal()
}

// StatusMessage renders the game situation for humans.
func (that *gameService) StatusMessage() string {
	switch that.state.Status() {
	case entity.StatusXWins:
		return fmt.Sprintf("%s Wins!", entity.PlayerX)
	case entity.StatusOWins:
		return fmt.Sprintf("%s Wins!", entity.PlayerO)
	case entity.StatusTie:
		return msgTieGame
	default:
		return fmt.Sprintf("Current player: %s", that.state.CurrentPlayer())
	}
}
