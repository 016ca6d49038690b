package tictactoe

import (
	"fmt"

	"mcts/game"
)

// Move marks Cell (row-major, 0 to 8) for Actor.
type Move struct {
	Actor game.Player
	Cell  int
}

func (m Move) Player() game.Player { return m.Actor }

func (m Move) String() string {
	return fmt.Sprintf("%s at row %d column %d", Symbol(m.Actor), m.Cell/Size+1, m.Cell%Size+1)
}

// State is a board together with the player to move.
type State struct {
	board  Board
	player game.Player
}

var _ game.State = State{}

func NewState(board Board, player game.Player) State {
	return State{board: board, player: player}
}

func (s State) Board() Board { return s.board }

func (s State) Player() game.Player { return s.player }

// Moves lists the empty cells in row-major order.
func (s State) Moves(player game.Player) []game.Move {
	if s.IsTerminal() {
		return nil
	}
	moves := make([]game.Move, 0, len(s.board))
	for cell, mark := range s.board {
		if mark == game.None {
			moves = append(moves, Move{Actor: player, Cell: cell})
		}
	}
	return moves
}

func (s State) Next(move game.Move) (game.State, error) {
	mv, ok := move.(Move)
	switch {
	case !ok:
		return nil, game.Invalid(move, "not a tic-tac-toe move")
	case s.IsTerminal():
		return nil, game.Invalid(mv, "the game is over")
	case mv.Actor != s.player:
		return nil, game.Invalid(mv, "it is %s's turn", Symbol(s.player))
	case mv.Cell < 0 || mv.Cell >= len(s.board):
		return nil, game.Invalid(mv, "cell %d is off the board", mv.Cell)
	case s.board[mv.Cell] != game.None:
		return nil, game.Invalid(mv, "cell is taken by %s", Symbol(s.board[mv.Cell]))
	}

	next := s // Board is an array, so this is a copy
	next.board[mv.Cell] = mv.Actor
	next.player = s.player.Opponent()
	return next, nil
}

func (s State) IsTerminal() bool {
	if _, ok := s.board.Line(); ok {
		return true
	}
	return s.board.Full()
}

// Winner returns the player who completed a line. A full board without a
// line is a draw and has no winner.
func (s State) Winner() (game.Player, bool) {
	return s.board.Line()
}

func (s State) String() string {
	return fmt.Sprintf("%v\n%s to move", s.board, Symbol(s.player))
}
