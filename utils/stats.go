package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     uint64
	Restarts             int
	StartTime            time.Time
}

// NewStats starts the runtime clock at now
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation and the time the last frame took
func (s *Stats) Update(generation uint64, population int, frame time.Duration) {
	s.TotalGenerations = generation
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime is the wall time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d generations in %.1fs | %.1f gen/sec | avg pop %.1f | peak pop %d | restarts %d",
		s.TotalGenerations, s.Runtime().Seconds(), s.GenerationsPerSecond,
		s.AveragePopulation, s.PeakPopulation, s.Restarts)
}
