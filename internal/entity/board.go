package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the side length of the board.
const Size = 3

// Mark is the content of a single cell. The zero value is Empty.
type Mark int8

const (
	Empty Mark = iota
	X
	O
)

var ErrInvalidBoard = errors.New("invalid board")

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Action identifies a cell by row and column, both in [0, Size).
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a value type: assigning or passing a Board copies every cell.
type Board [Size][Size]Mark

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(Empty) == 0
}

func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Row separators are
// optional and '-' is accepted for an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.ReplaceAll(strings.TrimSpace(s), "/", "")
	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Size*Size, len(cells))
	}

	for i, ch := range strings.ToUpper(cells) {
		var mark Mark
		switch ch {
		case 'X':
			mark = X
		case 'O':
			mark = O
		case '.', '-':
			mark = Empty
		default:
			return board, fmt.Errorf("%w: unexpected cell %q", ErrInvalidBoard, ch)
		}
		board[i/Size][i%Size] = mark
	}

	return board, nil
}
