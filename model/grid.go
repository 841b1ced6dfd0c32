package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// ErrInvalidDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Option configures a Grid at construction time
type Option func(*Grid)

// WithWorkers splits each generation into n row bands computed concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.workers = n
		}
	}
}

// Grid is a toroidal Game of Life board. Cells are stored row-major, so the
// cell at (x, y) lives at index y*width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
	next   []Cell // next-generation buffer, swapped with cells on Update

	workers    int
	generation uint64
	history    []string // recent grid hashes for cycle detection
}

// NewGrid creates a grid with every cell dead
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}

	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		next:    make([]Cell, width*height),
		workers: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells, always width*height
func (g *Grid) Len() int {
	return len(g.cells)
}

// Generation returns how many times Update has run since the grid was
// created or last cleared.
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Reset] got %dx%d", width, height)
	}

	g.width = width
	g.height = height
	if g.workers < 1 {
		g.workers = 1
	}
	if n := width * height; cap(g.cells) >= n && cap(g.next) >= n {
		g.cells = g.cells[:n]
		g.next = g.next[:n]
	} else {
		g.cells = make([]Cell, n)
		g.next = make([]Cell, n)
	}
	g.Clear()
	return nil
}

// Clear kills every cell and forgets the generation count and history
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
		g.next[i] = Cell{}
	}
	g.generation = 0
	g.history = nil
}

// wrap reduces v into [0, n), negative values included
func wrap(v, n int) int {
	return (v%n + n) % n
}

// CoordsToIndex maps a coordinate to its linear index. Coordinates outside the
// grid are wrapped around the torus first.
func (g *Grid) CoordsToIndex(p Point) int {
	return wrap(p.Y, g.height)*g.width + wrap(p.X, g.width)
}

// IndexToCoords is the inverse of CoordsToIndex over [0, Len()).
func (g *Grid) IndexToCoords(index int) Point {
	index = wrap(index, len(g.cells))
	return Point{X: index % g.width, Y: index / g.width}
}

// SetState marks every listed point alive and leaves all other cells as
// they were. Points outside the grid wrap modulo width and height.
func (g *Grid) SetState(points []Point) {
	for _, p := range points {
		g.cells[g.CoordsToIndex(p)].SetAlive(true)
	}
	g.history = nil
}

// Cell returns the cell at index, which must be in [0, Len()).
func (g *Grid) Cell(index int) Cell {
	return g.cells[index]
}

// Alive reports whether the cell at p is alive
func (g *Grid) Alive(p Point) bool {
	return g.cells[g.CoordsToIndex(p)].IsAlive()
}

// AlivePoints returns the coordinates of every live cell in index order
func (g *Grid) AlivePoints() []Point {
	var points []Point
	for i, c := range g.cells {
		if c.IsAlive() {
			points = append(points, g.IndexToCoords(i))
		}
	}
	return points
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// countNeighbors counts live cells in the Moore neighborhood of (x, y) on the
// torus.
func (g *Grid) countNeighbors(x, y int) uint8 {
	var count uint8
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + g.height) % g.height
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.width) % g.width
			if g.cells[ny*g.width+nx].IsAlive() {
				count++
			}
		}
	}
	return count
}

// computeRows writes the next generation of rows [startRow, endRow) into the
// next buffer. It only reads g.cells.
func (g *Grid) computeRows(startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			idx := y*g.width + x
			g.next[idx].SetAlive(g.cells[idx].NextState(g.countNeighbors(x, y)))
		}
	}
}

// Update advances the grid by exactly one generation.
func (g *Grid) Update() {
	numWorkers := min(g.workers, g.height)
	if numWorkers <= 1 {
		g.computeRows(0, g.height)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		)

		for i := range numWorkers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, g.height)
			)
			if startRow >= g.height {
				break
			}

			eg.Go(func() error {
				g.computeRows(startRow, endRow)
				return nil
			})
		}

		// bands never fail
		_ = eg.Wait()
	}

	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Clone returns an independent copy of the grid, history excluded
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:      g.width,
		height:     g.height,
		cells:      make([]Cell, len(g.cells)),
		next:       make([]Cell, len(g.next)),
		workers:    g.workers,
		generation: g.generation,
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// GridHash returns an MD5 hash of the current grid state
func (g *Grid) GridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c.IsAlive() {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// RecordGeneration adds the current state to the history and reports whether
// it repeats one of the recently recorded states, which means the grid is
// static or stuck in a short cycle.
func (g *Grid) RecordGeneration() (repeated bool) {
	current := g.GridHash()
	for _, seen := range g.history {
		if seen == current {
			repeated = true
			break
		}
	}

	g.history = append(g.history, current)
	// Keep only the last few states
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
	return repeated
}

// InjectRandomLife sets count randomly chosen cells alive to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	for range count {
		g.cells[rng.IntN(len(g.cells))].SetAlive(true)
	}
}
