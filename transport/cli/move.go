package cli

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type MoveCommand struct {
	logger *slog.Logger
	out    io.Writer

	board string
	seed  int64
}

// moveResponse is written as JSON. Action is nil when the board is terminal.
type moveResponse struct {
	Board    string         `json:"board"`
	Player   string         `json:"player,omitempty"`
	Action   *entity.Action `json:"action,omitempty"`
	Terminal bool           `json:"terminal"`
	Winner   string         `json:"winner,omitempty"`
	Utility  *int           `json:"utility,omitempty"`
}

func NewMoveCommand(logger *slog.Logger, out io.Writer) *MoveCommand {
	return &MoveCommand{
		logger: logger,
		out:    out,
	}
}

func (*MoveCommand) Name() string     { return "move" }
func (*MoveCommand) Synopsis() string { return "Print the optimal move for a board" }
func (*MoveCommand) Usage() string {
	return `move -board "XX./OO./..."
`
}

func (that *MoveCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&that.board, "board", "", "board rows joined by '/', '.' for empty cells")
	flags.Int64Var(&that.seed, "seed", 0, "random seed for the opening move (0 picks one)")
}

func (that *MoveCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := that.logger.With("command", that.Name())

	board, err := entity.ParseBoard(that.board)
	if err != nil {
		log.Error("could not parse board", "board", that.board, "error", err)
		return subcommands.ExitUsageError
	}

	if that.seed == 0 {
		that.seed = time.Now().UnixNano()
	}

	response := moveResponse{
		Board:    board.String(),
		Terminal: tictactoe.Terminal(board),
	}

	if response.Terminal {
		utility, _ := tictactoe.Utility(board)
		response.Utility = &utility
		if winner := tictactoe.Winner(board); winner != entity.Empty {
			response.Winner = winner.String()
		}
	} else {
		action, _ := tictactoe.Minimax(board, rand.New(rand.NewSource(that.seed))) //nolint: gosec // it's ok
		response.Player = tictactoe.Player(board).String()
		response.Action = &action
	}

	if err = writeJSON(that.out, response); err != nil {
		log.Error("could not write move", "error", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
