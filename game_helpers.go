package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/patterns"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// game drives a grid on a fixed cadence and reports on it
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	rng      *rand.Rand
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer

	stagnantCount int
	restartOffset uint64 // generations run by grids replaced on restart
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	g := &game{
		config:   config,
		rng:      patterns.NewRand(config.Seed),
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		out:      out,
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool(model.WithWorkers(config.Workers))
	}

	grid, err := g.newSeededGrid()
	if err != nil {
		return nil, err
	}
	g.grid = grid
	return g, nil
}

// newSeededGrid builds a grid, from the pool when enabled, and seeds it from
// the configured initial state.
func (g *game) newSeededGrid() (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if g.pool != nil {
		grid, err = g.pool.Get(g.config.Width, g.config.Height)
	} else {
		grid, err = model.NewGrid(g.config.Width, g.config.Height, model.WithWorkers(g.config.Workers))
	}
	if err != nil {
		return nil, errors.Wrap(err, "[newSeededGrid] failed to create grid")
	}

	if g.config.InitialState != patterns.Random && !patterns.Known(g.config.InitialState) {
		log.Printf("unknown initial state %q, seeding randomly", g.config.InitialState)
	}
	grid.SetState(patterns.Seed(g.config.InitialState, g.config.Width, g.config.Height, g.rng, g.config.RandomDensity))
	return grid, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial state: %s | Initial living cells: %d\n",
		g.grid.Width(), g.grid.Height(), g.config.InitialState, g.grid.CountLivingCells())
	fmt.Fprintf(g.out, "Features: Memory Pool: %v, Workers: %d, Auto restart: %v\n",
		g.config.UseMemoryPool, g.config.Workers, g.config.AutoRestart)
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState records the current generation and returns status information
func (g *game) updateGameState(frame time.Duration) (livingCells int, density float64, status string) {
	livingCells = g.grid.CountLivingCells()
	density = float64(livingCells) / float64(g.grid.Len()) * 100

	g.stats.Update(g.generationsRun(), livingCells, frame)

	if g.grid.RecordGeneration() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status = "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, density, status
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	generation := g.generationsRun()
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	if g.stats.Restarts > 0 {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.grid.Generation())
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame replaces the grid with a freshly seeded one
func (g *game) restartGame(reason string) error {
	log.Printf("restarting due to %s at generation %d", reason, g.generationsRun())

	grid, err := g.newSeededGrid()
	if err != nil {
		return err
	}
	g.restartOffset += g.grid.Generation()
	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.stagnantCount = 0
	g.stats.Restarts++
	return nil
}

// tick runs one frame: report, maybe restart, then advance one generation
func (g *game) tick(frame time.Duration) error {
	livingCells, density, status := g.updateGameState(frame)

	if !g.config.Headless {
		if err := g.renderer.Clear(); err != nil {
			return err
		}
		g.displayGameStatus(livingCells, density, status)
		if err := g.renderer.Display(g.grid); err != nil {
			return err
		}
	}

	if err := g.applyRestartPolicy(livingCells); err != nil {
		return err
	}

	g.grid.Update()
	return nil
}

// applyRestartPolicy restarts an extinct or stuck grid, or injects life into
// one that has started repeating. It does nothing unless auto restart is on.
func (g *game) applyRestartPolicy(livingCells int) error {
	if !g.config.AutoRestart {
		return nil
	}
	if restart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config); restart {
		return g.restartGame(reason)
	}
	if g.stagnantCount >= 2 {
		// Inject some life to try to break the stagnation
		g.grid.InjectRandomLife(g.rng, g.config.InjectionCount)
	}
	return nil
}

// generationsRun counts generations across restarts
func (g *game) generationsRun() uint64 {
	return g.restartOffset + g.grid.Generation()
}

// run ticks until the context is cancelled or the generation limit is hit
func (g *game) run(ctx context.Context) error {
	var tick <-chan time.Time
	if g.config.FrameRate > 0 {
		ticker := time.NewTicker(g.config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	lastFrameTime := time.Now()
	for {
		if g.config.MaxGenerations > 0 && g.generationsRun() >= uint64(g.config.MaxGenerations) {
			log.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		if err := g.tick(frameStart.Sub(lastFrameTime)); err != nil {
			return err
		}
		lastFrameTime = frameStart
	}
}

// shutdown returns the grid to the pool and prints the final stats
func (g *game) shutdown() {
	g.stats.TotalGenerations = g.generationsRun()
	fmt.Fprintf(g.out, "Final stats: %s\n", g.stats)
	model.GridToPool(g.grid, g.pool)
}
