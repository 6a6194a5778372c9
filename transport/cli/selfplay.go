package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type SelfPlayCommand struct {
	logger *slog.Logger
	out    io.Writer

	games   int
	workers int
	seed    int64
	records bool
}

func NewSelfPlayCommand(logger *slog.Logger, conf *config.Config, out io.Writer) *SelfPlayCommand {
	return &SelfPlayCommand{
		logger:  logger,
		out:     out,
		games:   conf.SelfPlay.Games,
		workers: conf.SelfPlay.Workers,
		seed:    conf.SelfPlay.Seed,
	}
}

func (*SelfPlayCommand) Name() string     { return "selfplay" }
func (*SelfPlayCommand) Synopsis() string { return "Play the minimax bot against itself and report results" }
func (*SelfPlayCommand) Usage() string {
	return `selfplay [flags]
`
}

func (that *SelfPlayCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&that.games, "games", that.games, "number of games to play")
	flags.IntVar(&that.workers, "workers", that.workers, "number of games played in parallel")
	flags.Int64Var(&that.seed, "seed", that.seed, "random seed for opening moves (0 picks one)")
	flags.BoolVar(&that.records, "records", false, "include every game record in the output")
}

func (that *SelfPlayCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := that.logger.With("command", that.Name())

	if that.games < 1 {
		log.Error("games must be positive", "games", that.games)
		return subcommands.ExitUsageError
	}

	if that.seed == 0 {
		that.seed = time.Now().UnixNano()
	}

	bot := service.NewBotService(that.logger, that.seed)
	selfPlay := usecase.NewSelfPlay(that.logger, bot, that.workers)

	summary, err := selfPlay.Run(ctx, that.games)
	if err != nil {
		log.Error("self-play failed", "error", err)
		return subcommands.ExitFailure
	}

	if !that.records {
		summary.Records = nil
	}

	if err = writeJSON(that.out, summary); err != nil {
		log.Error("could not write summary", "error", err)
		return subcommands.ExitFailure
	}

	if summary.Draws != summary.Games {
		log.Error("perfect play did not draw", "seed", that.seed, "x_wins", summary.XWins, "o_wins", summary.OWins)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal output: %w", err)
	}

	if _, err = fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}
