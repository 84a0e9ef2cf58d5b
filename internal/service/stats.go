package service

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Stats aggregates the outcomes of completed games. Counters live in memory
// only and are discarded on process exit.
type Stats struct {
	Completed int
	XWins     int
	OWins     int
	Ties      int
}

// StatsRecorder counts finished games by final status.
type StatsRecorder struct {
	logger *slog.Logger
	stats  Stats
}

func NewStatsRecorder(logger *slog.Logger) *StatsRecorder {
	return &StatsRecorder{
		logger: logger.With("component", "stats_recorder"),
	}
}

// RecordResult registers one completed game. Non-terminal statuses are
// ignored.
func (that *StatsRecorder) RecordResult(status entity.GameStatus) {
	switch status {
	case entity.StatusXWins:
		that.stats.XWins++
	case entity.StatusOWins:
		that.stats.OWins++
	case entity.StatusTie:
		that.stats.Ties++
	default:
		return
	}

	that.stats.Completed++
	that.logger.Debug("recorded game result", "status", string(status), "completed", that.stats.Completed)
}

// Snapshot returns a copy of the current counters.
func (that *StatsRecorder) Snapshot() Stats {
	return that.stats
}

var _ GameRecorder = (*StatsRecorder)(nil)
