package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/session"
)

// Report aggregates the outcomes of one simulation run.
type Report struct {
	Games int
	XWins int
	OWins int
	Ties  int
}

// Runner plays complete games of uniformly random legal moves, one fresh
// session per game. It is a soak harness, not an AI opponent.
type Runner struct {
	logger  *slog.Logger
	manager *session.Manager
	rng     *rand.Rand
}

// NewRunner builds a runner. Seed 0 means seed from the clock.
func NewRunner(logger *slog.Logger, manager *session.Manager, seed int64) *Runner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Runner{
		logger:  logger.With("component", "simulation"),
		manager: manager,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // reproducible simulation, not crypto
	}
}

// Run plays the requested number of games and tallies their final statuses.
// The context is checked between games only; a single game never blocks.
func (that *Runner) Run(ctx context.Context, games int, gridSize entity.GridSize) (Report, error) {
	var report Report

	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("simulation interrupted: %w", err)
		}

		sess := that.manager.Create(gridSize)
		status := that.playGame(sess.Service)
		that.manager.Delete(sess.ID)

		report.Games++
		switch status {
		case entity.StatusXWins:
			report.XWins++
		case entity.StatusOWins:
			report.OWins++
		case entity.StatusTie:
			report.Ties++
		}
	}

	that.logger.Info("simulation run complete",
		"games", report.Games,
		"x_wins", report.XWins,
		"o_wins", report.OWins,
		"ties", report.Ties,
	)

	return report, nil
}

func (that *Runner) playGame(svc service.GameService) entity.GameStatus {
	state := svc.GameState()

	for !state.IsTerminal() {
		coord, ok := that.pickMove(state)
		if !ok {
			break
		}

		if result := svc.AttemptMove(coord); !result.Accepted {
			// cannot happen for a coordinate from ValidMoves
			that.logger.Error("simulated move rejected", "message", result.Message)
			break
		}
	}

	return svc.Status()
}

// pickMove selects a uniformly random legal move, false when none remain.
func (that *Runner) pickMove(playable game.Playable) (entity.GridCoordinate, bool) {
	moves := playable.ValidMoves()
	if len(moves) == 0 {
		return entity.GridCoordinate{}, false
	}

	return moves[that.rng.Intn(len(moves))], true
}
