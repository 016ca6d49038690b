package tictactoe

import (
	"fmt"
	"strings"

	"mcts/game"
)

// Game starts from an empty board with X to move unless created from a
// position.
type Game struct {
	start State
}

var _ game.Game = Game{}

func New() Game {
	return Game{start: NewState(Board{}, game.First)}
}

// FromPosition starts the game from a parsed position.
func FromPosition(position string) (Game, error) {
	s, err := ParsePosition(position)
	if err != nil {
		return Game{}, err
	}
	return Game{start: s}, nil
}

func (g Game) Start() game.State { return g.start }

func (g Game) Opener() game.Player { return game.First }

// ParseMove reads "<row> <column>", both 1-based.
func (g Game) ParseMove(player game.Player, input string) (game.Move, error) {
	var row, col int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d %d", &row, &col); err != nil {
		return nil, &game.InvalidMoveError{Reason: fmt.Sprintf("expected \"<row> <column>\", got %q", input)}
	}
	if row < 1 || row > Size || col < 1 || col > Size {
		return nil, &game.InvalidMoveError{Reason: fmt.Sprintf("row and column must be between 1 and %d", Size)}
	}
	return Move{Actor: player, Cell: (row-1)*Size + col - 1}, nil
}
