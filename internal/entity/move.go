package entity

// Move is a historical record of a placed mark. Records are appended to the
// game log and never mutated.
type Move struct {
	Coordinate GridCoordinate
	Player     Player
}

func NewMove(coord GridCoordinate, player Player) Move {
	return Move{Coordinate: coord, Player: player}
}
