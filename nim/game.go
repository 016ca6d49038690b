package nim

import (
	"fmt"
	"slices"
	"strings"

	"mcts/game"
)

var DefaultPiles = []int{3, 6, 9}

// Game is a subtraction game with a mutable current position for drivers
// that play one move at a time.
type Game struct {
	start   []int
	current State
}

var _ game.Game = &Game{}

// New creates a game on the given piles, or on DefaultPiles when none are given.
func New(piles ...int) *Game {
	if len(piles) == 0 {
		piles = DefaultPiles
	}
	g := &Game{start: slices.Clone(piles)}
	g.current = NewState(g.start, g.Opener())
	return g
}

func (g *Game) Start() game.State { return NewState(g.start, g.Opener()) }

func (g *Game) Opener() game.Player { return game.First }

func (g *Game) Current() State { return g.current }

func (g *Game) SetCurrent(state State) { g.current = state }

func (g *Game) IsOver() bool { return g.current.IsTerminal() }

// PlayMove removes count items from pile (0-based) for the player to move.
// An illegal removal returns an *game.InvalidMoveError and changes nothing.
func (g *Game) PlayMove(pile, count int) error {
	next, err := g.current.Next(Move{Actor: g.current.Player(), Pile: pile, Count: count})
	if err != nil {
		return err
	}
	g.current = next.(State)
	return nil
}

// ParseMove reads "<pile> <count>" with a 1-based pile number.
func (g *Game) ParseMove(player game.Player, input string) (game.Move, error) {
	var pile, count int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d %d", &pile, &count); err != nil {
		return nil, &game.InvalidMoveError{Reason: fmt.Sprintf("expected \"<pile> <count>\", got %q", input)}
	}
	return Move{Actor: player, Pile: pile - 1, Count: count}, nil
}
