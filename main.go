package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/ui"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

func main() {
	log.SetPrefix("[gol] ")

	config, err := utils.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, config utils.Config, out io.Writer) error {
	g, err := initializeGame(config, out)
	if err != nil {
		return err
	}

	// the window steps the grid itself, so there are no terminal stats to report
	if config.Window {
		defer model.GridToPool(g.grid, g.pool)
		return ui.Run(ctx, g.grid, config)
	}

	defer g.shutdown()
	g.displayGameInfo()
	return g.run(ctx)
}
