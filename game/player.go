package game

import "fmt"

// Player identifies one side of a two-player game.
type Player int8

const (
	None Player = iota // No player, also used as the "no winner" sentinel
	First
	Second
)

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return None
}

func (p Player) String() string {
	switch p {
	case None:
		return "none"
	case First:
		return "player1"
	case Second:
		return "player2"
	}
	return fmt.Sprintf("Player(%d)", int8(p))
}
