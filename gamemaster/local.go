package gamemaster

import (
	"errors"

	"mcts/game"
	"mcts/utils"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// UpdateGetter returns the latest played move and the state it produced, or
// nils when nothing was played since the last call.
type UpdateGetter func() (game.Move, game.State)

// Master owns the real game between turns and validates every move before it
// is applied.
type Master interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
	State() game.State
	IsOver() bool
}

type update struct {
	move  game.Move
	state game.State
}

// Local keeps the current state of a game.Game in process.
type Local struct {
	game     game.Game
	state    game.State
	updateCh chan update
}

var _ Master = &Local{}

func NewLocal(g game.Game) *Local {
	l := &Local{game: g}
	l.Init()
	return l
}

// Init resets the game to its starting state.
func (l *Local) Init() (game.State, UpdateGetter) {
	l.state = l.game.Start()
	l.updateCh = make(chan update, 1)
	updates := l.updateCh
	return l.state, func() (game.Move, game.State) {
		select {
		case u := <-updates:
			return u.move, u.state
		default: // No updates yet
			return nil, nil
		}
	}
}

func (l *Local) State() game.State { return l.state }

func (l *Local) IsOver() bool { return l.state.IsTerminal() }

// Play applies move if it is legal for the player to move. Rejected moves
// leave the game untouched.
func (l *Local) Play(move game.Move) error {
	if l.IsOver() {
		return ErrGameOver
	}
	if move == nil {
		return &game.InvalidMoveError{Reason: "no move given"}
	}

	next, err := l.state.Next(move)
	if err != nil {
		return err
	}
	if !utils.Contains(l.state.Moves(l.state.Player()), move) {
		return game.Invalid(move, "not a legal move for %v", l.state.Player())
	}
	l.state = next
	l.publish(update{move: move, state: next})
	return nil
}

// publish keeps only the most recent update.
func (l *Local) publish(u update) {
	select {
	case <-l.updateCh:
	default:
	}
	l.updateCh <- u
}
