package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, board entity.Board) (entity.Action, error)
}

type botService struct {
	logger *slog.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBotService returns a bot that plays the minimax move. The seed only
// affects the opening move on the empty board.
func NewBotService(logger *slog.Logger, seed int64) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rnd:    rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *botService) MakeTurn(ctx context.Context, board entity.Board) (entity.Action, error) {
	if err := ctx.Err(); err != nil {
		return entity.Action{}, fmt.Errorf("bot turn canceled: %w", err)
	}

	if tictactoe.Terminal(board) {
		return entity.Action{}, apperror.ErrNoAvailableMoves
	}

	// only the opening draws from the shared source
	var rnd *rand.Rand
	if board == tictactoe.InitialState() {
		that.mu.Lock()
		defer that.mu.Unlock()
		rnd = that.rnd
	}

	action, ok := tictactoe.Minimax(board, rnd)
	if !ok {
		return entity.Action{}, apperror.ErrNoAvailableMoves
	}

	that.logger.DebugContext(ctx, "bot chose action",
		"board", board.String(),
		"player", tictactoe.Player(board).String(),
		"action", action.String(),
	)

	return action, nil
}
