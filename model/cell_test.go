package model

import "testing"

func TestCellSetAlive(t *testing.T) {
	var c Cell
	if c.IsAlive() {
		t.Fatalf("zero cell should be dead")
	}
	c.SetAlive(true)
	if !c.IsAlive() {
		t.Fatalf("cell should be alive after SetAlive(true)")
	}
	c.SetAlive(false)
	if c.IsAlive() {
		t.Fatalf("cell should be dead after SetAlive(false)")
	}
}

func TestCellNextState(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors uint8
		want      bool
	}{
		{"live underpopulated", true, 1, false},
		{"live survives with two", true, 2, true},
		{"live survives with three", true, 3, true},
		{"live overpopulated", true, 4, false},
		{"live surrounded", true, 8, false},
		{"dead stays dead with two", false, 2, false},
		{"dead born with three", false, 3, true},
		{"dead stays dead with four", false, 4, false},
		{"dead stays dead alone", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cell{alive: tt.alive}
			if got := c.NextState(tt.neighbors); got != tt.want {
				t.Fatalf("NextState(%d) = %v, want %v", tt.neighbors, got, tt.want)
			}
			if c.IsAlive() != tt.alive {
				t.Fatalf("NextState must not mutate the cell")
			}
		})
	}
}

func TestPointsFromPairs(t *testing.T) {
	got := PointsFromPairs([][2]int{{1, 2}, {3, 4}, {0, 0}})
	want := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 0, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if p := (Point{X: 1, Y: 1}).Add(-2, 3); p != (Point{X: -1, Y: 4}) {
		t.Fatalf("Add = %v", p)
	}
}
