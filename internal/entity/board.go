package entity

// Board is a size×size matrix of marks stored row-major in a flat slice.
// It never grows or shrinks after creation. Board does not validate writes,
// that is the caller's job; the read path is defensive instead.
type Board struct {
	size  GridSize
	cells []Player
}

func NewBoard(size GridSize) *Board {
	return &Board{
		size:  size,
		cells: make([]Player, size.TotalCells()),
	}
}

func (that *Board) Size() GridSize {
	return that.size
}

// Place unconditionally overwrites the cell. The coordinate must be within
// bounds.
func (that *Board) Place(coord GridCoordinate, player Player) {
	that.cells[coord.Row*that.size.Size()+coord.Col] = player
}

// Cell returns the mark at the coordinate, or PlayerNone for any coordinate
// outside the grid.
func (that *Board) Cell(coord GridCoordinate) Player {
	if !that.size.Contains(coord) {
		return PlayerNone
	}
	return that.cells[coord.Row*that.size.Size()+coord.Col]
}

// Reset clears every cell back to PlayerNone.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = PlayerNone
	}
}

// Copy returns a defensive row-major matrix copy for external consumers so
// they cannot mutate the live board.
func (that *Board) Copy() [][]Player {
	n := that.size.Size()

	snapshot := make([][]Player, n)
	for row := 0; row < n; row++ {
		snapshot[row] = make([]Player, n)
		copy(snapshot[row], that.cells[row*n:(row+1)*n])
	}

	return snapshot
}
