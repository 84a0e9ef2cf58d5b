package entity

// Player is the mark occupying a cell. PlayerNone marks an empty cell and
// never holds a turn.
type Player string

const (
	PlayerNone Player = ""
	PlayerX    Player = "X"
	PlayerO    Player = "O"
)

func (that Player) IsNone() bool {
	return that == PlayerNone
}

// Opponent returns the other mark. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}
