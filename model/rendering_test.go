package model

import (
	"bytes"
	"testing"
)

func TestAliveRects(t *testing.T) {
	g := newTestGrid(t, 4, 3)
	g.SetState([]Point{{3, 0}, {1, 2}})

	rects := AliveRects(g, 10)
	want := []Rect{
		{X: 30, Y: 0, W: 10, H: 10},
		{X: 10, Y: 20, W: 10, H: 10},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	g.SetState([]Point{{0, 0}, {2, 1}})

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := "██    \n    ██\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, want %q", buf.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != ansiClearHome {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
