package patterns

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
)

func TestNames(t *testing.T) {
	want := []string{"blinker", "glider", "glider-collision", "glider-gun", "toad"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a, ok := Lookup("glider")
	if !ok || len(a) != 5 {
		t.Fatalf("Lookup(glider) = %v, %v", a, ok)
	}
	a[0] = model.Point{X: 99, Y: 99}

	b, _ := Lookup("glider")
	if b[0] == a[0] {
		t.Fatalf("Lookup must not expose the table")
	}

	if _, ok := Lookup("nope"); ok {
		t.Fatalf("Lookup(nope) should fail")
	}
}

func TestCentered(t *testing.T) {
	points, err := Centered("blinker", 11, 7)
	if err != nil {
		t.Fatalf("Centered: %v", err)
	}
	want := []model.Point{{X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3}}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("Centered(blinker) = %v, want %v", points, want)
		}
	}

	if _, err := Centered("nope", 10, 10); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Centered(nope) error = %v, want ErrUnknownPattern", err)
	}
}

func TestGliderGunEmitsGliders(t *testing.T) {
	g, err := model.NewGrid(60, 40)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	points, err := Centered("glider-gun", g.Width(), g.Height())
	if err != nil {
		t.Fatalf("Centered: %v", err)
	}
	g.SetState(points)
	if n := g.CountLivingCells(); n != 36 {
		t.Fatalf("glider gun seeded %d cells, want 36", n)
	}

	// the gun has period 30 and adds one glider per period
	for range 30 {
		g.Update()
	}
	if n := g.CountLivingCells(); n != 36+5 {
		t.Fatalf("after one period the gun has %d cells, want %d", n, 36+5)
	}
}

func TestToadOscillates(t *testing.T) {
	g, err := model.NewGrid(8, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	points, err := Centered("toad", 8, 8)
	if err != nil {
		t.Fatalf("Centered: %v", err)
	}
	g.SetState(points)
	start := g.Clone()

	g.Update()
	if g.Equal(start) {
		t.Fatalf("toad should change after one generation")
	}
	g.Update()
	if !g.Equal(start) {
		t.Fatalf("toad should return after two generations")
	}
}

func TestRandomPointsReproducible(t *testing.T) {
	a := RandomPoints(NewRand(99), 20, 15, 0.5)
	b := RandomPoints(NewRand(99), 20, 15, 0.5)
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d points", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i].X < 0 || a[i].X >= 20 || a[i].Y < 0 || a[i].Y >= 15 {
			t.Fatalf("point %v outside the grid", a[i])
		}
	}
	if len(a) == 0 || len(a) == 300 {
		t.Fatalf("density 0.5 produced %d of 300 cells", len(a))
	}
}

func TestRandomPointsDensityBounds(t *testing.T) {
	if n := len(RandomPoints(NewRand(1), 10, 10, 0)); n != 0 {
		t.Fatalf("density 0 produced %d points", n)
	}
	if n := len(RandomPoints(NewRand(1), 10, 10, 1)); n != 100 {
		t.Fatalf("density 1 produced %d points", n)
	}
}

func TestSeed(t *testing.T) {
	if points := Seed(Random, 4, 4, NewRand(3), 1); len(points) != 16 {
		t.Fatalf("Seed(random) = %d points, want 16", len(points))
	}

	if points := Seed("glider", 10, 10, nil, 0); len(points) != 5 {
		t.Fatalf("Seed(glider) = %d points, want 5", len(points))
	}
}

func TestSeedUnknownSelectorFallsBackToRandom(t *testing.T) {
	if Known("spaceship") {
		t.Fatalf("spaceship should not be a known pattern")
	}

	got := Seed("spaceship", 10, 10, NewRand(1), 0.5)
	want := RandomPoints(NewRand(1), 10, 10, 0.5)
	if len(got) == 0 {
		t.Fatalf("unknown selector seeded no cells")
	}
	if len(got) != len(want) {
		t.Fatalf("unknown selector seeded %d cells, random seeding gives %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
