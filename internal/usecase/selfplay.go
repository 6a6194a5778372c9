package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type botService interface {
	MakeTurn(ctx context.Context, board entity.Board) (entity.Action, error)
}

// Summary tallies the outcomes of a batch of self-play games.
type Summary struct {
	Games int `json:"games"`
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`

	Records []*entity.Game `json:"records,omitempty"`
}

type SelfPlay struct {
	logger  *slog.Logger
	bot     botService
	workers int
}

func NewSelfPlay(logger *slog.Logger, bot botService, workers int) *SelfPlay {
	if workers < 1 {
		workers = 1
	}

	return &SelfPlay{
		logger:  logger.With("component", "selfplay"),
		bot:     bot,
		workers: workers,
	}
}

// PlayGame lets the bot play both sides from the initial board until the
// game is over.
func (that *SelfPlay) PlayGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())
	log := that.logger.With("method", "PlayGame", "gameID", game.ID)

	board := tictactoe.InitialState()
	for !tictactoe.Terminal(board) {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game %s interrupted: %w", game.ID, err)
		}

		action, err := that.bot.MakeTurn(ctx, board)
		if err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}

		board, err = tictactoe.Result(board, action)
		if err != nil {
			return game, fmt.Errorf("failed apply action %s: %w", action, err)
		}

		game.Board = board
		game.Moves = append(game.Moves, action)
	}

	// terminal boards always have a utility
	game.Utility, _ = tictactoe.Utility(board)
	game.Winner = tictactoe.Winner(board)
	game.Status = entity.StatusFinished

	log.Debug("game finished", "board", board.String(), "winner", game.Winner.String(), "moves", len(game.Moves))

	return game, nil
}

// Run plays the given number of independent games on at most workers
// goroutines and tallies the results.
func (that *SelfPlay) Run(ctx context.Context, games int) (*Summary, error) {
	log := that.logger.With("method", "Run")

	records := make([]*entity.Game, games)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(that.workers)

	for i := range games {
		grp.Go(func() error {
			game, err := that.PlayGame(ctx)
			if err != nil {
				return err
			}

			records[i] = game
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("self-play failed: %w", err)
	}

	summary := &Summary{Games: games, Records: records}
	for _, game := range records {
		switch game.Winner {
		case entity.X:
			summary.XWins++
		case entity.O:
			summary.OWins++
		default:
			summary.Draws++
		}
	}

	log.Info("self-play finished",
		"games", summary.Games,
		"x_wins", summary.XWins,
		"o_wins", summary.OWins,
		"draws", summary.Draws,
	)

	return summary, nil
}
