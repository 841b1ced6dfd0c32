package model

import "github.com/sheikhrachel/go-gol-torus/rules"

// Cell is a single binary-state unit of the grid. Cells carry no identity
// beyond their position and are copied by value.
type Cell struct {
	alive bool
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// SetAlive sets the cell state unconditionally
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// NextState returns the cell state for the next generation given the number
// of live cells in its Moore neighborhood.
func (c Cell) NextState(aliveNeighbors uint8) bool {
	return rules.ApplyConwayRules(aliveNeighbors, c.alive)
}
