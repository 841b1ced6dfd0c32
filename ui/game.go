//go:build ebiten

// Package ui opens a window that steps and draws a grid with ebiten.
package ui

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

var (
	backgroundColor = color.Black
	cellColor       = color.RGBA{R: 0, G: 200, B: 0, A: 255}
)

// Game adapts a grid to the ebiten.Game interface
type Game struct {
	ctx      context.Context
	grid     *model.Grid
	cellSize float32
	screen   int

	paused   bool
	tickOnce bool
}

// New constructs a Game drawing grid cells of config.CellSize pixels
func New(ctx context.Context, grid *model.Grid, config utils.Config) *Game {
	return &Game{
		ctx:      ctx,
		grid:     grid,
		cellSize: config.CellSize(),
		screen:   int(config.ScreenSize),
	}
}

// Update handles input and advances the grid one generation per tick
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if !g.paused || g.tickOnce {
		g.grid.Update()
		g.tickOnce = false
	}
	return nil
}

// Draw paints every live cell as a filled square
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, r := range model.AliveRects(g.grid, g.cellSize) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, cellColor, false)
	}
}

// Layout returns the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screen, g.screen
}

// Run opens the window and blocks until it is closed or ctx is cancelled
func Run(ctx context.Context, grid *model.Grid, config utils.Config) error {
	ebiten.SetWindowTitle("Game of life")
	ebiten.SetWindowSize(int(config.ScreenSize), int(config.ScreenSize))
	ebiten.SetTPS(config.TPS())

	if err := ebiten.RunGame(New(ctx, grid, config)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}
