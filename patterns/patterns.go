// Package patterns holds the named seed patterns and the random seeder used
// to populate a fresh grid. Patterns are plain coordinate data; the grid
// consumes them through model.Grid.SetState.
package patterns

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
)

// Random is the initial-state selector that falls back to random seeding
const Random = "random"

// ErrUnknownPattern is returned for a selector that names no pattern
var ErrUnknownPattern = errors.New("unknown pattern")

var table = map[string][][2]int{
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"toad": {
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	},
	"glider": {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	// Gosper glider gun
	"glider-gun": {
		{24, 0},
		{22, 1}, {24, 1},
		{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
		{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
		{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
		{10, 6}, {16, 6}, {24, 6},
		{11, 7}, {15, 7},
		{12, 8}, {13, 8},
	},
	// two gliders on a head-on course
	"glider-collision": {
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
		{11, 0}, {10, 1}, {10, 2}, {11, 2}, {12, 2},
	},
}

// Names returns every pattern name in sorted order
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the coordinates of a named pattern anchored at the origin
func Lookup(name string) ([]model.Point, bool) {
	pairs, ok := table[name]
	if !ok {
		return nil, false
	}
	return model.PointsFromPairs(pairs), true
}

// bounds returns the width and height of the pattern's bounding box
func bounds(points []model.Point) (w, h int) {
	for _, p := range points {
		w = max(w, p.X+1)
		h = max(h, p.Y+1)
	}
	return w, h
}

// Centered returns a named pattern translated to the middle of a width x
// height grid. Patterns larger than the grid keep their origin and wrap.
func Centered(name string, width, height int) ([]model.Point, error) {
	points, ok := Lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Centered] %q", name)
	}

	w, h := bounds(points)
	dx := max(0, (width-w)/2)
	dy := max(0, (height-h)/2)
	for i := range points {
		points[i] = points[i].Add(dx, dy)
	}
	return points, nil
}

// NewRand returns a deterministic generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandomPoints picks every cell of a width x height grid independently with
// probability density.
func RandomPoints(rng *rand.Rand, width, height int, density float64) []model.Point {
	var points []model.Point
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				points = append(points, model.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Known reports whether name is in the pattern table
func Known(name string) bool {
	_, ok := table[name]
	return ok
}

// Seed resolves an initial-state selector into the points to set alive. Known
// pattern names are centered on the grid; "random" and every unrecognized
// selector draw each cell from rng with probability density.
func Seed(selector string, width, height int, rng *rand.Rand, density float64) []model.Point {
	if points, err := Centered(selector, width, height); err == nil {
		return points
	}
	return RandomPoints(rng, width, height, density)
}
