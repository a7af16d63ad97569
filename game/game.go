// Package game drives a Game of Life simulation from a placed seed to its fixed point.
package game

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/model"
	"github.com/sheikhrachel/seedlife/utils"
)

// Game holds the simulation state: the current grid, the buffer the next
// generation is written into, and whether a fixed point has been reached.
// A Game is not safe for concurrent use.
type Game struct {
	current *model.Grid
	next    *model.Grid

	particle   byte
	workers    int
	stale      bool
	generation int

	detectCycles   bool
	cycleWindow    int
	cycling        bool
	history        []string
	maxGenerations int

	stats *utils.Stats
}

// Option configures a Game
type Option func(*Game)

// WithWorkers sets the number of row bands evaluated in parallel
func WithWorkers(n int) Option {
	return func(g *Game) { g.workers = max(1, n) }
}

// WithCycleDetection stops Run once a grid repeats within the last window generations
func WithCycleDetection(window int) Option {
	return func(g *Game) {
		g.detectCycles = window > 0
		g.cycleWindow = window
	}
}

// WithMaxGenerations stops Run after n generations. Zero means no limit.
func WithMaxGenerations(n int) Option {
	return func(g *Game) { g.maxGenerations = max(0, n) }
}

// WithStats records per generation timings and population into s
func WithStats(s *utils.Stats) Option {
	return func(g *Game) { g.stats = s }
}

// FromConfig translates the run settings of config into options
func FromConfig(config utils.Config, stats *utils.Stats) []Option {
	opts := []Option{
		WithWorkers(config.Workers),
		WithMaxGenerations(config.MaxGenerations),
		WithStats(stats),
	}
	if config.DetectCycles {
		opts = append(opts, WithCycleDetection(config.CycleWindow))
	}
	return opts
}

// New starts a game from start, which the game takes ownership of.
// Every non-blank cell of start is rewritten to particle.
func New(start *model.Grid, particle byte, opts ...Option) (*Game, error) {
	if start == nil || start.Height() <= 0 || start.Width() <= 0 {
		return nil, errors.Wrap(model.ErrInvalidDimensions, "[New] empty start grid")
	}
	if particle == model.Dead {
		return nil, errors.New("[New] particle must not be the dead cell glyph")
	}

	next, err := model.New(start.Height(), start.Width())
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to allocate next buffer")
	}

	g := &Game{
		current:  start,
		next:     next,
		particle: particle,
		workers:  model.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.current.ReplaceParticle(particle)
	if g.detectCycles {
		g.history = []string{g.current.Hash()}
	}
	return g, nil
}

// Current returns the current generation. It stays valid until the next call to Advance.
func (g *Game) Current() *model.Grid {
	return g.current
}

// Snapshot returns a copy of the current generation
func (g *Game) Snapshot() *model.Grid {
	return g.current.Clone()
}

// Particle returns the glyph used for live cells
func (g *Game) Particle() byte {
	return g.particle
}

// Generation returns the number of generations that changed the grid
func (g *Game) Generation() int {
	return g.generation
}

// Stale reports whether the last Advance produced a grid identical to the current one
func (g *Game) Stale() bool {
	return g.stale
}

// Cycling reports whether the current grid repeats one seen within the cycle window
func (g *Game) Cycling() bool {
	return g.cycling
}

// Stats returns the statistics the game records into, if any
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Alive returns the number of live cells in the current generation
func (g *Game) Alive() int {
	return g.current.CountAlive(g.particle)
}

// Advance computes the next generation. When it equals the current one the game
// becomes stale and the current grid is kept; otherwise the buffers are swapped.
// It reports whether the grid changed.
func (g *Game) Advance() (bool, error) {
	if g.stale {
		return false, nil
	}

	if err := g.current.ComputeInto(g.next, g.particle, g.workers); err != nil {
		return false, errors.Wrapf(err, "[Advance] generation %d", g.generation+1)
	}
	if g.next.Equal(g.current) {
		g.stale = true
		return false, nil
	}

	g.current, g.next = g.next, g.current
	g.generation++
	g.recordHistory()
	return true, nil
}

// recordHistory keeps the hashes of the last cycleWindow generations
func (g *Game) recordHistory() {
	if !g.detectCycles {
		return
	}

	hash := g.current.Hash()
	g.cycling = slices.Contains(g.history, hash)

	g.history = append(g.history, hash)
	if len(g.history) > g.cycleWindow {
		g.history = g.history[len(g.history)-g.cycleWindow:]
	}
}
