package terminal

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

// Renderer draws board snapshots and status lines to a terminal. It works on
// defensive copies only and never touches live game state.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: termenv.NewOutput(w)}
}

// RenderBoard draws the row-major snapshot with row and column indexes.
func (that *Renderer) RenderBoard(board [][]entity.Player) {
	fmt.Fprint(that.out, "\n   ")
	for col := range board {
		fmt.Fprintf(that.out, " %d  ", col)
	}
	fmt.Fprintln(that.out)

	for row, cells := range board {
		fmt.Fprintf(that.out, " %d ", row)
		for col, cell := range cells {
			fmt.Fprintf(that.out, " %s ", that.mark(cell))
			if col < len(cells)-1 {
				fmt.Fprint(that.out, "|")
			}
		}
		fmt.Fprintln(that.out)

		if row < len(board)-1 {
			fmt.Fprint(that.out, "   ")
			for col := range cells {
				fmt.Fprint(that.out, "---")
				if col < len(cells)-1 {
					fmt.Fprint(that.out, "+")
				}
			}
			fmt.Fprintln(that.out)
		}
	}
	fmt.Fprintln(that.out)
}

func (that *Renderer) RenderStatus(message string) {
	fmt.Fprintln(that.out, message)
}

// RenderInstructions shows what the player can type in the current phase.
func (that *Renderer) RenderInstructions(gameOver bool) {
	if gameOver {
		fmt.Fprintln(that.out, "Type 'new' to restart or 'quit' to exit")
		return
	}
	fmt.Fprintln(that.out, "Enter a move as '<row> <col>' - type 'quit' to exit")
}

// RenderStats prints the session totals, usually on the way out.
func (that *Renderer) RenderStats(stats service.Stats) {
	fmt.Fprintf(that.out, "Games completed: %d (X: %d, O: %d, ties: %d)\n",
		stats.Completed, stats.XWins, stats.OWins, stats.Ties)
}

func (that *Renderer) mark(player entity.Player) string {
	switch player {
	case entity.PlayerX:
		return that.out.String(string(player)).Foreground(termenv.ANSIRed).Bold().String()
	case entity.PlayerO:
		return that.out.String(string(player)).Foreground(termenv.ANSIBlue).Bold().String()
	default:
		return that.out.String(".").Faint().String()
	}
}
