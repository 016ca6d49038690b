package nim

import (
	"fmt"
	"slices"

	"mcts/game"
	"mcts/utils"
)

// Move removes Count items from the pile at index Pile.
type Move struct {
	Actor game.Player
	Pile  int
	Count int
}

func (m Move) Player() game.Player { return m.Actor }

func (m Move) String() string {
	return fmt.Sprintf("%v takes %d from pile %d", m.Actor, m.Count, m.Pile+1)
}

// State is a misère subtraction position: whoever takes the last item loses.
type State struct {
	piles  []int
	player game.Player
}

var _ game.State = State{}

// NewState copies piles into a new position with player to move.
func NewState(piles []int, player game.Player) State {
	return State{piles: slices.Clone(piles), player: player}
}

// Piles returns a copy of the pile sizes.
func (s State) Piles() []int { return slices.Clone(s.piles) }

func (s State) Player() game.Player { return s.player }

// Remaining returns the number of items left on the table.
func (s State) Remaining() int { return utils.Sum(s.piles...) }

// NimSum is the xor of all pile sizes.
func (s State) NimSum() int {
	sum := 0
	for _, pile := range s.piles {
		sum ^= pile
	}
	return sum
}

// Moves lists every removal pile by pile, smallest count first.
func (s State) Moves(player game.Player) []game.Move {
	moves := make([]game.Move, 0, s.Remaining())
	for i, pile := range s.piles {
		for count := 1; count <= pile; count++ {
			moves = append(moves, Move{Actor: player, Pile: i, Count: count})
		}
	}
	return moves
}

func (s State) validate(move Move) error {
	if move.Actor != s.player {
		return game.Invalid(move, "it is %v's turn", s.player)
	}
	if move.Pile < 0 || move.Pile >= len(s.piles) {
		return game.Invalid(move, "there is no pile %d", move.Pile+1)
	}
	if move.Count <= 0 {
		return game.Invalid(move, "you must remove at least one piece")
	}
	if move.Count > s.piles[move.Pile] {
		return game.Invalid(move, "cannot remove %d pieces from pile %d holding %d",
			move.Count, move.Pile+1, s.piles[move.Pile])
	}
	return nil
}

func (s State) Next(move game.Move) (game.State, error) {
	mv, ok := move.(Move)
	if !ok {
		return nil, game.Invalid(move, "not a subtraction game move")
	}
	if err := s.validate(mv); err != nil {
		return nil, err
	}

	next := NewState(s.piles, s.player.Opponent())
	next.piles[mv.Pile] -= mv.Count
	return next, nil
}

func (s State) IsTerminal() bool {
	for _, pile := range s.piles {
		if pile > 0 {
			return false
		}
	}
	return true
}

// Winner is the player facing the empty table. The opponent took the last
// item on the previous turn and lost.
func (s State) Winner() (game.Player, bool) {
	if !s.IsTerminal() {
		return game.None, false
	}
	return s.player, true
}

func (s State) String() string {
	return fmt.Sprintf("%v %v to move", s.piles, s.player)
}
