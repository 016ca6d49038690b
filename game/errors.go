package game

import (
	"errors"
	"fmt"
)

// ErrNoLegalMoves marks a non-terminal state whose mover has nothing to play.
var ErrNoLegalMoves = errors.New("no legal moves")

// InvalidMoveError is returned when a move is not legal in a position.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	if e.Move == nil {
		return fmt.Sprintf("invalid move: %s", e.Reason)
	}
	return fmt.Sprintf("invalid move %v: %s", e.Move, e.Reason)
}

// Invalid builds an *InvalidMoveError for move.
func Invalid(move Move, format string, args ...any) error {
	return &InvalidMoveError{Move: move, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidMove reports whether err wraps an *InvalidMoveError.
func IsInvalidMove(err error) bool {
	var target *InvalidMoveError
	return errors.As(err, &target)
}
