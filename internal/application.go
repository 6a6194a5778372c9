package application

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/subcommands"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/transport/cli"
)

var ErrCommandFailed = errors.New("command failed")

// RunApp - parses the command line and runs the selected command.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	commander := subcommands.NewCommander(flag.CommandLine, filepath.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(cli.NewSelfPlayCommand(logger, conf, os.Stdout), "")
	commander.Register(cli.NewMoveCommand(logger, os.Stdout), "")

	flag.Parse()

	if status := commander.Execute(ctx); status != subcommands.ExitSuccess {
		return fmt.Errorf("%w: exit status %d", ErrCommandFailed, status)
	}

	return nil
}
