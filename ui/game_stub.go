//go:build !ebiten

// Package ui opens a window that steps and draws a grid with ebiten.
package ui

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag
var ErrNoWindow = errors.New("windowed mode requires building with -tags ebiten")

// Run always fails in the headless build
func Run(context.Context, *model.Grid, utils.Config) error {
	return ErrNoWindow
}
