package utils

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
)

const maxPopulationHistory = 500

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
	PopulationHistory    []float64

	computeTotal time.Duration
	computeCount int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Measure runs fn and returns how long it took
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Update records one generation and the time spent computing it
func (s *Stats) Update(generation, population int, compute time.Duration) {
	s.TotalGenerations = generation
	s.Population = population

	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	s.computeTotal += compute
	s.computeCount++

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.PopulationHistory = append(s.PopulationHistory, float64(population))
	if len(s.PopulationHistory) > maxPopulationHistory {
		s.PopulationHistory = s.PopulationHistory[1:]
	}
}

// AverageCompute returns the mean time spent computing a generation
func (s *Stats) AverageCompute() time.Duration {
	if s.computeCount == 0 {
		return 0
	}
	return s.computeTotal / time.Duration(s.computeCount)
}

// Line returns a one line status for display under a frame
func (s *Stats) Line() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Avg compute: %.4fms",
		s.TotalGenerations, s.Population, float64(s.AverageCompute().Microseconds())/1000)
}

// Summary returns the end of run report
func (s *Stats) Summary() string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds\nAverage: %.1f gen/sec, %.1f avg population, %s avg compute",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation, s.AverageCompute())
}

// Plot charts the population history. It returns "" until two generations are recorded.
func (s *Stats) Plot(width, height int) string {
	if len(s.PopulationHistory) < 2 {
		return ""
	}
	return asciigraph.Plot(s.PopulationHistory,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population per generation"),
	)
}
