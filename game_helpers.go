package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/game"
	"github.com/sheikhrachel/seedlife/model"
	"github.com/sheikhrachel/seedlife/tui"
	"github.com/sheikhrachel/seedlife/utils"
)

const (
	infoPause = time.Second

	plotWidth  = 60
	plotHeight = 10
)

// displayGameInfo shows the initial game information
func displayGameInfo(ctx context.Context, out io.Writer, config utils.Config, sim *game.Game) {
	grid := sim.Current()
	fmt.Fprintf(out, "Seed: %s | Alignment: %s | Workers: %d\n",
		config.SeedPath, config.Align(), config.Workers)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.Height(), grid.Width(), sim.Alive())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
	game.DelayPacer{Delay: infoPause}.Wait(ctx)
}

// play runs sim on the renderer named by the config
func play(ctx context.Context, out io.Writer, config utils.Config, sim *game.Game) (game.Result, error) {
	switch config.Renderer {
	case utils.RendererScreen:
		if config.Step {
			logger.Println("--step is ignored by the screen renderer")
		}
		screen, err := tui.NewScreenRenderer()
		if err != nil {
			return sim.Outcome(), err
		}
		defer screen.Close()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go screen.Watch(cancel)

		return sim.Run(ctx, screen, game.DelayPacer{Delay: config.Delay})

	case utils.RendererTUI:
		if config.Step {
			logger.Println("--step is ignored by the tui renderer, use space and n instead")
		}
		err := tui.Run(ctx, sim, config.Delay)
		return sim.Outcome(), err

	default:
		return sim.Run(ctx, newPlainRenderer(out, config, sim), newPacer(out, config))
	}
}

func newPlainRenderer(out io.Writer, config utils.Config, sim *game.Game) *model.TerminalRenderer {
	renderer := model.NewTerminalRenderer(out)
	renderer.Style = &tui.CellStyle
	if config.ShowStats && sim.Stats() != nil {
		renderer.Caption = sim.Stats().Line
	}
	return renderer
}

func newPacer(out io.Writer, config utils.Config) game.Pacer {
	if config.Step {
		return game.NewStepPacer(os.Stdin, out)
	}
	return game.DelayPacer{Delay: config.Delay}
}

// displaySummary prints how the run ended
func displaySummary(out io.Writer, config utils.Config, result game.Result, stats *utils.Stats) {
	fmt.Fprintf(out, "\nStopped after %d generations (%s) | Living cells: %d\n",
		result.Generations, result.Reason, result.Alive)
	if config.ShowStats {
		fmt.Fprintln(out, stats.Summary())
	}
	if config.Plot {
		if chart := stats.Plot(plotWidth, plotHeight); chart != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, chart)
		}
	}
}

func newPool(config utils.Config) *model.GridPool {
	if !config.UseMemoryPool {
		return nil
	}
	return model.NewGridPool()
}

// runGenerations applies next n times to a copy of start, recycling every replaced grid
func runGenerations(start *model.Grid, n int, pool *model.GridPool, next func(*model.Grid) *model.Grid) *model.Grid {
	grid := start.Clone()
	for range n {
		nextGrid := next(grid)
		model.Recycle(grid, pool)
		grid = nextGrid
	}
	return grid
}

// benchWorkerCounts returns the powers of two up to 8 plus the configured count
func benchWorkerCounts(configured int) []int {
	counts := []int{1, 2, 4, 8}
	if configured > 0 && !slices.Contains(counts, configured) {
		counts = append(counts, configured)
	}
	return counts
}

func perGeneration(total time.Duration, generations int) time.Duration {
	if generations <= 0 {
		return 0
	}
	return total / time.Duration(generations)
}

func validateBench(generations int) error {
	if generations < 1 {
		return errors.Errorf("[validateBench] generations must be positive, got %d", generations)
	}
	return nil
}
