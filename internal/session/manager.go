package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// Session is one independent game with its own state and façade. Sessions
// share no mutable state with each other.
type Session struct {
	ID        string
	Service   service.GameService
	CreatedAt time.Time
}

// Manager is an in-memory registry of live sessions. The lock guards the
// registry map only; game state inside a session is still single-threaded.
type Manager struct {
	logger   *slog.Logger
	recorder service.GameRecorder

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(logger *slog.Logger, recorder service.GameRecorder) *Manager {
	return &Manager{
		logger:   logger.With("component", "session_manager"),
		recorder: recorder,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session around a fresh game of the given size.
func (that *Manager) Create(gridSize entity.GridSize) *Session {
	state := game.NewGameState(gridSize)

	sess := &Session{
		ID:        uuid.NewString(),
		Service:   service.NewGameService(that.logger, state, that.recorder),
		CreatedAt: time.Now(),
	}

	that.mu.Lock()
	that.sessions[sess.ID] = sess
	that.mu.Unlock()

	that.logger.Debug("created session", "session_id", sess.ID, "grid_size", gridSize.Size())

	return sess
}

func (that *Manager) Get(id string) (*Session, error) {
	that.mu.RLock()
	sess, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return sess, nil
}

// Delete removes the session from the registry. Deleting an unknown ID is a
// no-op.
func (that *Manager) Delete(id string) {
	that.mu.Lock()
	delete(that.sessions, id)
	that.mu.Unlock()
}

func (that *Manager) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}
