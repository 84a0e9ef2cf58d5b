package entity

// GameStatus is the lifecycle phase of a game. StatusInProgress is the only
// non-terminal value.
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusXWins      GameStatus = "x_wins"
	StatusOWins      GameStatus = "o_wins"
	StatusTie        GameStatus = "tie"
)

func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// WinStatus maps a winning mark to its terminal status.
func WinStatus(winner Player) GameStatus {
	if winner == PlayerX {
		return StatusXWins
	}
	return StatusOWins
}
