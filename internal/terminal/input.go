package terminal

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// CommandKind classifies a translated input line.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandMove
	CommandNewGame
	CommandQuit
)

// Command is the abstract form of one line of player input. Coordinate is
// set for CommandMove only.
type Command struct {
	Kind       CommandKind
	Coordinate entity.GridCoordinate
}

// ParseCommand translates a raw input line into a command. Anything
// unparseable comes back as CommandUnknown; the input layer never surfaces
// errors to the game loop.
func ParseCommand(line string) Command {
	fields := strings.Fields(strings.ToLower(line))

	switch {
	case len(fields) == 0:
		return Command{Kind: CommandUnknown}

	case fields[0] == "quit" || fields[0] == "exit" || fields[0] == "q":
		return Command{Kind: CommandQuit}

	case fields[0] == "new" || fields[0] == "restart" || fields[0] == "r":
		return Command{Kind: CommandNewGame}

	case len(fields) == 2:
		return parseMove(fields[0], fields[1])

	default:
		return Command{Kind: CommandUnknown}
	}
}

func parseMove(rawRow, rawCol string) Command {
	row, err := strconv.Atoi(rawRow)
	if err != nil {
		return Command{Kind: CommandUnknown}
	}

	col, err := strconv.Atoi(rawCol)
	if err != nil {
		return Command{Kind: CommandUnknown}
	}

	coord, err := entity.NewGridCoordinate(row, col)
	if err != nil {
		return Command{Kind: CommandUnknown}
	}

	return Command{Kind: CommandMove, Coordinate: coord}
}
