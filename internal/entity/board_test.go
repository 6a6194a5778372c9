package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "X", X.String())
		assert.Equal(t, "O", O.String())
		assert.Equal(t, ".", Empty.String())
	})

	t.Run("Opponent", func(t *testing.T) {
		assert.Equal(t, O, X.Opponent())
		assert.Equal(t, X, O.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})
}

func TestBoard_Count(t *testing.T) {
	// Given: a board with two X marks and one O mark
	board := Board{
		{X, O, Empty},
		{Empty, X, Empty},
		{Empty, Empty, Empty},
	}

	// Then: the counts should match the cells
	assert.Equal(t, 2, board.Count(X))
	assert.Equal(t, 1, board.Count(O))
	assert.Equal(t, 6, board.Count(Empty))
	assert.False(t, board.IsFull())
}

func TestBoard_Copy(t *testing.T) {
	// Given: a board and a copy of it
	board := Board{}
	copied := board

	// When: the copy is modified
	copied[1][1] = X

	// Then: the original board should be unchanged
	assert.Equal(t, Empty, board[1][1])
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a board rendered as a string
		board := Board{
			{X, X, Empty},
			{O, O, Empty},
			{Empty, Empty, Empty},
		}
		rendered := board.String()
		require.Equal(t, "XX./OO./...", rendered)

		// When: the string is parsed back
		parsed, err := ParseBoard(rendered)

		// Then: the same board should be returned
		require.NoError(t, err)
		assert.Equal(t, board, parsed)
	})

	t.Run("Separators and dashes are optional", func(t *testing.T) {
		parsed, err := ParseBoard("x-o---o-x")

		require.NoError(t, err)
		assert.Equal(t, Board{
			{X, Empty, O},
			{Empty, Empty, Empty},
			{O, Empty, X},
		}, parsed)
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("XX./OO.")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Unknown cell", func(t *testing.T) {
		_, err := ParseBoard("XX./OO./..Z")

		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("New game is ongoing", func(t *testing.T) {
		// When: a game is created
		game := NewGame("123")

		// Then: it should be ongoing on the empty board
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Finished game without winner is a draw", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.True(t, game.IsDraw())
	})

	t.Run("Finished game with winner is not a draw", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Winner: O}

		assert.False(t, game.IsDraw())
	})
}
