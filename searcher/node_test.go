package searcher

import (
	"fmt"

	"mcts/game"
)

// sticksState is a take-one-or-two game where taking the last stick wins.
type sticksState struct {
	player game.Player
	sticks int
}

type sticksMove struct {
	player game.Player
	take   int
}

func (m sticksMove) Player() game.Player { return m.player }

func (s sticksState) Player() game.Player { return s.player }

func (s sticksState) Moves(player game.Player) []game.Move {
	var moves []game.Move
	for take := 1; take <= min(2, s.sticks); take++ {
		moves = append(moves, sticksMove{player: player, take: take})
	}
	return moves
}

func (s sticksState) Next(move game.Move) (game.State, error) {
	mv, ok := move.(sticksMove)
	if !ok || mv.take < 1 || mv.take > 2 || mv.take > s.sticks {
		return nil, game.Invalid(move, "cannot take from %d sticks", s.sticks)
	}
	return sticksState{player: s.player.Opponent(), sticks: s.sticks - mv.take}, nil
}

func (s sticksState) IsTerminal() bool { return s.sticks == 0 }

func (s sticksState) Winner() (game.Player, bool) {
	if !s.IsTerminal() {
		return game.None, false
	}
	return s.player.Opponent(), true
}

func (s sticksState) String() string { return fmt.Sprintf("%v|%d", s.player, s.sticks) }

// deadEndState is open but offers no moves.
type deadEndState struct{}

func (deadEndState) Player() game.Player                  { return game.First }
func (deadEndState) Moves(game.Player) []game.Move        { return nil }
func (deadEndState) Next(m game.Move) (game.State, error) { return nil, game.Invalid(m, "dead end") }
func (deadEndState) IsTerminal() bool                     { return false }
func (deadEndState) Winner() (game.Player, bool)          { return game.None, false }

// drawState is a finished game without a winner.
type drawState struct{}

func (drawState) Player() game.Player                  { return game.Second }
func (drawState) Moves(game.Player) []game.Move        { return nil }
func (drawState) Next(m game.Move) (game.State, error) { return nil, game.Invalid(m, "game over") }
func (drawState) IsTerminal() bool                     { return true }
func (drawState) Winner() (game.Player, bool)          { return game.None, false }

func take(player game.Player, n int) game.Move { return sticksMove{player: player, take: n} }
