package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// InitialState returns the empty board.
func InitialState() entity.Board {
	return entity.Board{}
}

// Player returns the mark that moves next. X always starts; the mark
// counts are not validated.
func Player(board entity.Board) entity.Mark {
	if board.Count(entity.X) > board.Count(entity.O) {
		return entity.O
	}
	return entity.X
}

// Actions returns every empty cell in row-major order.
func Actions(board entity.Board) []entity.Action {
	actions := make([]entity.Action, 0, entity.Size*entity.Size)
	for row := range board {
		for col, cell := range board[row] {
			if cell == entity.Empty {
				actions = append(actions, entity.Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Result returns a copy of board with the current player's mark placed at
// action. The input board is never modified. Coordinates outside the board
// are a caller bug and panic on the index.
func Result(board entity.Board, action entity.Action) (entity.Board, error) {
	if board[action.Row][action.Col] != entity.Empty {
		return board, fmt.Errorf("%w: cell %s is occupied", apperror.ErrInvalidAction, action)
	}

	next := board
	next[action.Row][action.Col] = Player(board)

	return next, nil
}

// Winner returns the mark holding a complete line, or Empty.
func Winner(board entity.Board) entity.Mark {
	for i := range entity.Size {
		if board[i][0] != entity.Empty && board[i][0] == board[i][1] && board[i][1] == board[i][2] {
			return board[i][0]
		}
		if board[0][i] != entity.Empty && board[0][i] == board[1][i] && board[1][i] == board[2][i] {
			return board[0][i]
		}
	}

	center := board[1][1]
	if center == entity.Empty {
		return entity.Empty
	}
	if board[0][0] == center && center == board[2][2] {
		return center
	}
	if board[0][2] == center && center == board[2][0] {
		return center
	}

	return entity.Empty
}

// Terminal reports whether the game is over.
func Terminal(board entity.Board) bool {
	return Winner(board) != entity.Empty || board.IsFull()
}

// Utility scores a terminal board: 1 if X won, -1 if O won, 0 for a draw.
// ok is false when the board is not terminal.
func Utility(board entity.Board) (int, bool) {
	if !Terminal(board) {
		return 0, false
	}

	switch Winner(board) {
	case entity.X:
		return 1, true
	case entity.O:
		return -1, true
	default:
		return 0, true
	}
}
