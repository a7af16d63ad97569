package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/seedlife/rules"
)

// DefaultWorkers is the number of row bands evaluated concurrently per generation
const DefaultWorkers = 4

// Band is a half-open range of rows [Start, End) owned by one worker
type Band struct {
	Start int
	End   int
}

// Len returns the number of rows in the band
func (b Band) Len() int {
	return b.End - b.Start
}

// Bands splits height rows into workers contiguous bands of height/workers rows.
// The remainder rows are appended to the last band, so with more workers than
// rows every band but the last is empty.
func Bands(height, workers int) []Band {
	workers = max(1, workers)
	step := height / workers

	bands := make([]Band, workers)
	for i := range workers {
		bands[i] = Band{Start: i * step, End: (i + 1) * step}
	}
	bands[workers-1].End = height
	return bands
}

// NextGeneration calculates the next generation on the calling goroutine
func (g *Grid) NextGeneration(particle byte, pool *GridPool) *Grid {
	next := g.newBuffer(pool)
	g.computeBand(next, particle, Band{Start: 0, End: g.height})
	return next
}

// NextGenerationParallel calculates the next generation with one goroutine per row band
func (g *Grid) NextGenerationParallel(particle byte, workers int, pool *GridPool) *Grid {
	next := g.newBuffer(pool)
	// next is freshly allocated with our dimensions, so ComputeInto cannot fail
	_ = g.ComputeInto(next, particle, workers)
	return next
}

// ComputeInto writes the next generation of g into dst.
// Every worker reads all of g and writes only the rows of its own band in dst,
// and the call returns once every band is done.
func (g *Grid) ComputeInto(dst *Grid, particle byte, workers int) error {
	if dst == g {
		return errors.New("[ComputeInto] destination aliases the source grid")
	}
	if dst.height != g.height || dst.width != g.width {
		return errors.Wrapf(ErrInvalidDimensions, "[ComputeInto] destination %dx%d, source %dx%d",
			dst.height, dst.width, g.height, g.width)
	}

	var eg errgroup.Group
	for _, band := range Bands(g.height, workers) {
		if band.Len() == 0 {
			continue
		}
		eg.Go(func() error {
			g.computeBand(dst, particle, band)
			return nil
		})
	}
	return eg.Wait()
}

// computeBand applies the Life rule to every cell of the band, overwriting dst
func (g *Grid) computeBand(dst *Grid, particle byte, band Band) {
	for r := band.Start; r < band.End; r++ {
		src, out := g.cells[r], dst.cells[r]
		for c := range g.width {
			if rules.ApplyConwayRules(g.LiveNeighbors(r, c, particle), src[c] == particle) {
				out[c] = particle
			} else {
				out[c] = Dead
			}
		}
	}
}

func (g *Grid) newBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.height, g.width)
	}
	next := &Grid{}
	next.Reset(g.height, g.width)
	return next
}
