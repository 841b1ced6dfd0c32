package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearHome = "\033[H\033[2J"
)

// Rect is a screen rectangle in pixels
type Rect struct {
	X, Y, W, H float32
}

// CellRect maps a cell coordinate to its square on screen
func CellRect(p Point, cellSize float32) Rect {
	return Rect{
		X: float32(p.X) * cellSize,
		Y: float32(p.Y) * cellSize,
		W: cellSize,
		H: cellSize,
	}
}

// AliveRects returns the screen rectangle of every live cell in index order
func AliveRects(g *Grid, cellSize float32) []Rect {
	points := g.AlivePoints()
	rects := make([]Rect, len(points))
	for i, p := range points {
		rects[i] = CellRect(p, cellSize)
	}
	return rects
}

// TerminalRenderer draws the grid as text blocks
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid, one text line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for i := range g.Len() {
		if g.Cell(i).IsAlive() {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if g.IndexToCoords(i).X == g.Width()-1 {
			w.WriteByte('\n')
		}
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write grid")
}

// Clear clears the terminal screen and moves the cursor home
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClearHome)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
