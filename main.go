package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/seedlife/game"
	"github.com/sheikhrachel/seedlife/model"
	"github.com/sheikhrachel/seedlife/seed"
	"github.com/sheikhrachel/seedlife/utils"
)

var version = "dev"

var logger = log.New(os.Stderr, "seedlife: ", 0)

var (
	configFile     string
	particle       string
	alignment      string
	rows           int
	cols           int
	workers        int
	delay          time.Duration
	maxGenerations int
	detectCycles   bool
	step           bool
	rendererName   string
	showStats      bool
	plot           bool
	// bench
	benchGenerations int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "seedlife [flags] <seed-file>",
		Short:         "Conway's Game of Life from a text seed",
		Args:          cobra.ExactArgs(1),
		RunE:          runSimulation,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [flags] <seed-file>",
		Short: "run a seed until it reaches a fixed point",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [flags] <seed-file>",
		Short: "compare sequential and parallel generation times",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSeed,
	}
	addGridFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchGenerations, "generations", 200, "generations per measurement")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seedlife", version)
		},
	}

	rootCmd.AddCommand(runCmd, benchCmd, versionCmd)
	return rootCmd
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or json)")
	cmd.Flags().StringVarP(&particle, "particle", "p", "*", "character used for live cells")
	cmd.Flags().StringVarP(&alignment, "alignment", "a", "center", "seed alignment (center, top-left, top-right, bottom-left, bottom-right)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid height (default: terminal size)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid width (default: terminal size)")
	cmd.Flags().IntVar(&workers, "workers", model.DefaultWorkers, "parallel row bands per generation")
}

func addRunFlags(cmd *cobra.Command) {
	addGridFlags(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 40*time.Millisecond, "delay between generations")
	cmd.Flags().IntVar(&maxGenerations, "max-generations", 0, "stop after this many generations (0 = until stale)")
	cmd.Flags().BoolVar(&detectCycles, "detect-cycles", false, "stop when the grid repeats (oscillators)")
	cmd.Flags().BoolVar(&step, "step", false, "wait for enter between generations")
	cmd.Flags().StringVar(&rendererName, "renderer", utils.RendererPlain, "renderer (plain, screen, tui)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "show generation statistics")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the population history when the run ends")
}

// buildConfig layers the config file and the flags the user set over the defaults
func buildConfig(cmd *cobra.Command, args []string) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configFile != "" {
		loaded, err := utils.LoadConfig(configFile)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particle") {
		config.Particle = particle
	}
	if flags.Changed("alignment") {
		// unknown names keep the previous alignment
		config.SetAlignment(alignment)
	}
	if flags.Changed("rows") {
		config.Height = rows
	}
	if flags.Changed("cols") {
		config.Width = cols
	}
	if flags.Changed("workers") {
		config.Workers = workers
	}
	if flags.Changed("delay") {
		config.Delay = delay
	}
	if flags.Changed("max-generations") {
		config.MaxGenerations = maxGenerations
	}
	if flags.Changed("detect-cycles") {
		config.DetectCycles = detectCycles
	}
	if flags.Changed("step") {
		config.Step = step
	}
	if flags.Changed("renderer") {
		config.Renderer = rendererName
	}
	if flags.Changed("stats") {
		config.ShowStats = showStats
	}
	if flags.Changed("plot") {
		config.Plot = plot
	}
	if len(args) > 0 {
		config.SeedPath = args[0]
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// loadStart places the seed into a grid sized from the config or the terminal
func loadStart(config utils.Config) (*model.Grid, bool, error) {
	termRows, termCols, err := utils.TerminalSize()
	isTerminal := err == nil

	height, width := utils.DisplaySize(config, termRows, termCols)
	start, err := seed.LoadAndPlace(config.SeedPath, height, width, config.Align())
	if err != nil {
		return nil, isTerminal, err
	}
	return start, isTerminal, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	config, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	start, isTerminal, err := loadStart(config)
	if err != nil {
		return err
	}

	stats := utils.NewStats()
	sim, err := game.New(start, config.ParticleByte(), game.FromConfig(config, stats)...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if isTerminal && config.Renderer == utils.RendererPlain {
		displayGameInfo(ctx, out, config, sim)
	}

	result, err := play(ctx, out, config, sim)
	if err != nil && !isInterruption(err) {
		return err
	}

	displaySummary(out, config, result, stats)
	return nil
}

func benchSeed(cmd *cobra.Command, args []string) error {
	config, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := validateBench(benchGenerations); err != nil {
		return err
	}

	start, _, err := loadStart(config)
	if err != nil {
		return err
	}
	start.ReplaceParticle(config.ParticleByte())

	var (
		p    = config.ParticleByte()
		pool = newPool(config)
		w    = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	)

	var want *model.Grid
	seqTime := utils.Measure(func() {
		want = runGenerations(start, benchGenerations, pool, func(g *model.Grid) *model.Grid {
			return g.NextGeneration(p, pool)
		})
	})

	fmt.Fprintf(w, "grid\t%dx%d\n", start.Height(), start.Width())
	fmt.Fprintln(w, "mode\tworkers\tgenerations\ttotal\tper generation")
	fmt.Fprintf(w, "sequential\t1\t%d\t%s\t%s\n", benchGenerations, seqTime, perGeneration(seqTime, benchGenerations))

	for _, n := range benchWorkerCounts(config.Workers) {
		var got *model.Grid
		parTime := utils.Measure(func() {
			got = runGenerations(start, benchGenerations, pool, func(g *model.Grid) *model.Grid {
				return g.NextGenerationParallel(p, n, pool)
			})
		})
		if !got.Equal(want) {
			return errors.Errorf("[benchSeed] parallel result with %d workers diverged from sequential", n)
		}
		fmt.Fprintf(w, "parallel\t%d\t%d\t%s\t%s\n", n, benchGenerations, parTime, perGeneration(parTime, benchGenerations))
	}

	return w.Flush()
}

// isInterruption reports errors that mean the user stopped the run
func isInterruption(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.EOF)
}
