package model

import "fmt"

// Point is an (x, y) grid coordinate
type Point struct {
	X int
	Y int
}

// PointFromPair converts a raw (x, y) integer pair, as found in pattern data,
// into a Point.
func PointFromPair(pair [2]int) Point {
	return Point{X: pair[0], Y: pair[1]}
}

// PointsFromPairs converts a list of raw pairs, preserving order
func PointsFromPairs(pairs [][2]int) []Point {
	points := make([]Point, len(pairs))
	for i, pair := range pairs {
		points[i] = PointFromPair(pair)
	}
	return points
}

// Add returns the point translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
