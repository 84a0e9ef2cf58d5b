package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/session"
	"github.com/rocketscienceinc/tictactoe-engine/internal/simulation"
	"github.com/rocketscienceinc/tictactoe-engine/internal/terminal"
)

var ErrUnknownMode = errors.New("unknown run mode")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gridSize, err := entity.NewGridSize(conf.Game.GridSize)
	if err != nil {
		return fmt.Errorf("invalid grid size: %w", err)
	}

	recorder := service.NewStatsRecorder(logger)
	manager := session.NewManager(logger, recorder)

	switch conf.Mode {
	case config.ModeSimulate:
		runner := simulation.NewRunner(logger, manager, conf.Simulation.Seed)

		report, err := runner.Run(ctx, conf.Simulation.Games, gridSize)
		if err != nil {
			return fmt.Errorf("simulation run failed: %w", err)
		}

		log.Info("Simulation finished",
			"games", report.Games,
			"x_wins", report.XWins,
			"o_wins", report.OWins,
			"ties", report.Ties,
		)
		return nil

	case config.ModePlay:
		log.Info("Starting interactive game", "grid_size", gridSize.Size())
		return runInteractive(ctx, manager, recorder, gridSize)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

// runInteractive drives one session from stdin until quit or shutdown.
func runInteractive(ctx context.Context, manager *session.Manager, recorder *service.StatsRecorder, gridSize entity.GridSize) error {
	sess := manager.Create(gridSize)
	defer manager.Delete(sess.ID)

	renderer := terminal.NewRenderer(os.Stdout)
	renderer.RenderBoard(sess.Service.GameState().Board())
	renderer.RenderStatus(sess.Service.StatusMessage())
	renderer.RenderInstructions(sess.Service.IsGameOver())

	lines := readLines(ctx, os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := handleCommand(sess.Service, renderer, recorder, terminal.ParseCommand(line)); done {
				return nil
			}
		}
	}
}

// handleCommand dispatches one abstract command, true means quit.
func handleCommand(svc service.GameService, renderer *terminal.Renderer, recorder *service.StatsRecorder, cmd terminal.Command) bool {
	switch cmd.Kind {
	case terminal.CommandQuit:
		renderer.RenderStats(recorder.Snapshot())
		return true

	case terminal.CommandNewGame:
		if !svc.CanRestart() {
			renderer.RenderStatus("Finish the current game before restarting")
			return false
		}
		svc.StartNewGame()

	case terminal.CommandMove:
		result := svc.AttemptMove(cmd.Coordinate)
		renderer.RenderStatus(result.Message)

	default:
		renderer.RenderStatus("Unrecognized input")
		renderer.RenderInstructions(svc.IsGameOver())
		return false
	}

	renderer.RenderBoard(svc.GameState().Board())
	renderer.RenderStatus(svc.StatusMessage())
	renderer.RenderInstructions(svc.IsGameOver())

	return false
}

// readLines feeds stdin lines through a channel so the loop can also watch
// for shutdown. The channel closes on EOF.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
