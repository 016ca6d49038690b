package tictactoe

import (
	"fmt"
	"strings"

	"mcts/game"
)

const Size = 3

// Board holds the mark of every cell in row-major order; game.None is empty.
type Board [Size * Size]game.Player

var lines = [...][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Line returns the player owning a complete line, if any.
func (b Board) Line() (game.Player, bool) {
	for _, line := range lines {
		mark := b[line[0]]
		if mark != game.None && mark == b[line[1]] && mark == b[line[2]] {
			return mark, true
		}
	}
	return game.None, false
}

func (b Board) Full() bool {
	for _, mark := range b {
		if mark == game.None {
			return false
		}
	}
	return true
}

func (b Board) count(player game.Player) int {
	n := 0
	for _, mark := range b {
		if mark == player {
			n++
		}
	}
	return n
}

// Symbol is the console mark of a player: X for the first, O for the second.
func Symbol(p game.Player) string {
	switch p {
	case game.First:
		return "X"
	case game.Second:
		return "O"
	default:
		return "."
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Symbol(b[row*Size+col]))
		}
	}
	return sb.String()
}

// ParsePosition reads a board in the format produced by Board.String, e.g.
//
//	X . O
//	X O .
//	. . .
//
// The player to move follows from the mark counts, X moving first.
func ParsePosition(position string) (State, error) {
	var b Board
	rows := strings.Split(strings.TrimSpace(position), "\n")
	if len(rows) != Size {
		return State{}, fmt.Errorf("position has %d rows, want %d", len(rows), Size)
	}
	for row, line := range rows {
		cells := strings.Fields(line)
		if len(cells) != Size {
			return State{}, fmt.Errorf("row %d has %d cells, want %d", row+1, len(cells), Size)
		}
		for col, cell := range cells {
			switch strings.ToUpper(cell) {
			case "X":
				b[row*Size+col] = game.First
			case "O":
				b[row*Size+col] = game.Second
			case ".", "-", "_":
			default:
				return State{}, fmt.Errorf("unknown mark %q at row %d column %d", cell, row+1, col+1)
			}
		}
	}

	xs, os := b.count(game.First), b.count(game.Second)
	switch xs - os {
	case 0:
		return NewState(b, game.First), nil
	case 1:
		return NewState(b, game.Second), nil
	default:
		return State{}, fmt.Errorf("impossible position with %d X and %d O", xs, os)
	}
}
