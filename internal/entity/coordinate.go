package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Grid size bounds. The upper bound guards board allocation, it is not a
// game rule.
const (
	MinGridSize     = 1
	MaxGridSize     = 10
	DefaultGridSize = 3
)

// GridCoordinate is a (row, col) position on the grid. Value type, equality
// by ==.
type GridCoordinate struct {
	Row int
	Col int
}

// NewGridCoordinate rejects negative components; an out-of-range but
// non-negative coordinate is constructible and gets rejected at move time.
func NewGridCoordinate(row, col int) (GridCoordinate, error) {
	if row < 0 || col < 0 {
		return GridCoordinate{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrNegativeCoordinate, row, col)
	}

	return GridCoordinate{Row: row, Col: col}, nil
}

// GridSize is the validated side length of a square grid. The zero value is
// unusable, always construct through NewGridSize.
type GridSize struct {
	size int
}

func NewGridSize(size int) (GridSize, error) {
	if size < MinGridSize {
		return GridSize{}, fmt.Errorf("%w: %d", apperror.ErrGridSizeTooSmall, size)
	}

	if size > MaxGridSize {
		return GridSize{}, fmt.Errorf("%w: %d (maximum %d)", apperror.ErrGridSizeTooLarge, size, MaxGridSize)
	}

	return GridSize{size: size}, nil
}

func (that GridSize) Size() int {
	return that.size
}

func (that GridSize) TotalCells() int {
	return that.size * that.size
}

// Contains reports whether the coordinate lies on a grid of this size.
func (that GridSize) Contains(coord GridCoordinate) bool {
	return coord.Row >= 0 && coord.Row < that.size &&
		coord.Col >= 0 && coord.Col < that.size
}
