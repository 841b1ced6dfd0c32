//go:build !ebiten

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/ui"
)

func TestRunWindowModeSkipsTerminalStats(t *testing.T) {
	config := testConfig()
	config.Headless = false
	config.Window = true
	config.InitialState = "glider"

	var out bytes.Buffer
	err := run(context.Background(), config, &out)
	if !errors.Is(err, ui.ErrNoWindow) {
		t.Fatalf("run() = %v, want ErrNoWindow in the default build", err)
	}
	if strings.Contains(out.String(), "Final stats") {
		t.Fatalf("window mode printed terminal stats:\n%s", out.String())
	}
}

func TestRunTerminalModeReportsStats(t *testing.T) {
	config := testConfig()
	config.InitialState = "glider"
	config.MaxGenerations = 2

	var out bytes.Buffer
	if err := run(context.Background(), config, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Final stats: 2 generations") {
		t.Fatalf("missing final stats:\n%s", out.String())
	}
}
