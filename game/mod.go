package game

// Move is an immutable action tagged with the player who would make it.
// Implementations must be comparable: two structurally equal moves applied to
// equal states yield equal states.
type Move interface {
	Player() Player
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns whose turn it is.
	Player() Player
	// Moves returns every legal move for player, in a deterministic order.
	// It is empty when the state is terminal.
	Moves(player Player) []Move
	// Next applies a legal move and returns the resulting state with the turn
	// advanced. It returns an *InvalidMoveError for an illegal move and leaves
	// the receiver untouched.
	Next(move Move) (State, error)
	IsTerminal() bool
	// Winner reports the winner of a terminal state. It never guesses: ok is
	// false while the game is in progress or when it ended in a draw.
	Winner() (winner Player, ok bool)
}

// Game provides the starting state and the player who moves first.
type Game interface {
	Start() State
	Opener() Player
}
