package tictactoe

import (
	"math"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Value returns the game-theoretic value of board under perfect play by
// both sides: X maximizes the final utility, O minimizes it.
func Value(board entity.Board) int {
	if utility, ok := Utility(board); ok {
		return utility
	}

	maximizing := Player(board) == entity.X

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, action := range Actions(board) {
		score := Value(mustResult(board, action))
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// Minimax returns the optimal action for the player to move. ok is false
// when the board is terminal. On the empty board every move has the same
// value, so the opening is drawn at random from the legal actions; a nil
// rnd uses the global source.
func Minimax(board entity.Board, rnd *rand.Rand) (entity.Action, bool) {
	if Terminal(board) {
		return entity.Action{}, false
	}

	actions := Actions(board)

	if board == InitialState() {
		return actions[intn(rnd, len(actions))], true
	}

	maximizing := Player(board) == entity.X

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	var optimal entity.Action
	for _, action := range actions {
		score := Value(mustResult(board, action))
		// strict comparison keeps the first action reaching the best score
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			optimal = action
		}
	}

	return optimal, true
}

// mustResult is only called with actions taken from Actions(board).
func mustResult(board entity.Board, action entity.Action) entity.Board {
	next, err := Result(board, action)
	if err != nil {
		panic(err)
	}
	return next
}

func intn(rnd *rand.Rand, n int) int {
	if rnd == nil {
		return rand.Intn(n) //nolint: gosec // it's ok
	}
	return rnd.Intn(n)
}
