package game

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/model"
	"github.com/sheikhrachel/seedlife/utils"
)

// Reason tells why Run stopped
type Reason string

const (
	ReasonStale     Reason = "stale"
	ReasonCycle     Reason = "cycle"
	ReasonLimit     Reason = "generation limit"
	ReasonCancelled Reason = "cancelled"
)

// Renderer displays a generation
type Renderer interface {
	Render(g *model.Grid) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(g *model.Grid) error

func (f RendererFunc) Render(g *model.Grid) error {
	return f(g)
}

// Result describes how a run ended
type Result struct {
	Reason      Reason
	Generations int
	Alive       int
	Final       *model.Grid
}

// Run renders and advances the game until it goes stale. Cycle detection and a
// generation limit end the run early when configured. ctx is only checked
// between generations, so a started generation always completes.
func (g *Game) Run(ctx context.Context, renderer Renderer, pacer Pacer) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return g.result(ReasonCancelled), err
		}

		if err := renderer.Render(g.current); err != nil {
			return g.result(ReasonCancelled), errors.Wrapf(err, "[Run] render generation %d", g.generation)
		}
		if reason, done := g.finished(); done {
			return g.result(reason), nil
		}

		if err := g.Step(); err != nil {
			return g.result(ReasonCancelled), err
		}
		if g.stale {
			return g.result(ReasonStale), nil
		}

		if err := pacer.Wait(ctx); err != nil {
			return g.result(ReasonCancelled), err
		}
	}
}

// Step advances one generation and records it into the game's stats
func (g *Game) Step() error {
	var err error
	elapsed := utils.Measure(func() { _, err = g.Advance() })
	if err != nil {
		return err
	}
	if g.stats != nil {
		g.stats.Update(g.generation, g.Alive(), elapsed)
	}
	return nil
}

// Done reports whether the game reached a terminal state
func (g *Game) Done() bool {
	_, done := g.finished()
	return done
}

// Reason returns why the game is done, or "" while it is still running
func (g *Game) Reason() Reason {
	reason, _ := g.finished()
	return reason
}

// Outcome describes the game as it stands. A game that is not done counts as cancelled.
func (g *Game) Outcome() Result {
	reason, done := g.finished()
	if !done {
		reason = ReasonCancelled
	}
	return g.result(reason)
}

func (g *Game) finished() (Reason, bool) {
	switch {
	case g.stale:
		return ReasonStale, true
	case g.cycling:
		return ReasonCycle, true
	case g.maxGenerations > 0 && g.generation >= g.maxGenerations:
		return ReasonLimit, true
	}
	return "", false
}

func (g *Game) result(reason Reason) Result {
	return Result{
		Reason:      reason,
		Generations: g.generation,
		Alive:       g.Alive(),
		Final:       g.current.Clone(),
	}
}
