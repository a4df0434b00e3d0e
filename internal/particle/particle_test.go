package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

var (
	blue  = color.NRGBA{0x00, 0x2F, 0xFF, 0xFF}
	green = color.NRGBA{0xB4, 0xE0, 0x3C, 0xFF}
)

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[color.NRGBA]int{}

	for i := 0; i < 1000; i++ {
		p := New(rng, 640, 480, 0.3, blue, green)
		if p.Radius < 1 || p.Radius >= 3 {
			t.Fatalf("radius %f outside [1,3)", p.Radius)
		}
		if p.X < 0 || p.X >= 640 || p.Y < 0 || p.Y >= 480 {
			t.Fatalf("position (%f, %f) outside surface", p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.15 || math.Abs(p.VY) > 0.15 {
			t.Fatalf("velocity (%f, %f) above speed/2", p.VX, p.VY)
		}
		if p.Color != blue && p.Color != green {
			t.Fatalf("unexpected color %+v", p.Color)
		}
		seen[p.Color]++
	}
	if seen[blue] == 0 || seen[green] == 0 {
		t.Errorf("expected both accents, got %v", seen)
	}
}

func TestUpdate_Bounce(t *testing.T) {
	tests := []struct {
		name   string
		in     Particle
		wantX  float64
		wantY  float64
		wantVX float64
		wantVY float64
	}{
		{"interior", Particle{X: 10, Y: 10, VX: 1, VY: -1}, 11, 9, 1, -1},
		{"left edge", Particle{X: 0, Y: 50, VX: -0.1}, 0, 50, 0.1, 0},
		{"right edge", Particle{X: 99.95, Y: 50, VX: 0.1}, 100, 50, -0.1, 0},
		{"top edge", Particle{X: 50, Y: 0.05, VY: -0.1}, 50, 0, 0, 0.1},
		{"bottom edge", Particle{X: 50, Y: 100, VY: 0.2}, 50, 100, 0, -0.2},
		{"exactly on edge", Particle{X: 100, Y: 100}, 100, 100, 0, 0},
	}

	for _, tt := range tests {
		p := tt.in
		p.Update(100, 100)
		if math.Abs(p.X-tt.wantX) > 1e-9 || math.Abs(p.Y-tt.wantY) > 1e-9 {
			t.Errorf("%s: position (%f, %f), want (%f, %f)", tt.name, p.X, p.Y, tt.wantX, tt.wantY)
		}
		if math.Abs(p.VX-tt.wantVX) > 1e-9 || math.Abs(p.VY-tt.wantVY) > 1e-9 {
			t.Errorf("%s: velocity (%f, %f), want (%f, %f)", tt.name, p.VX, p.VY, tt.wantVX, tt.wantVY)
		}
	}
}

func TestUpdate_ClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ps := make([]Particle, 50)
	for i := range ps {
		ps[i] = New(rng, 300, 200, 40, blue, green)
	}

	for frame := 0; frame < 500; frame++ {
		for i := range ps {
			ps[i].Update(300, 200)
			p := ps[i]
			if p.X < 0 || p.X > 300 || p.Y < 0 || p.Y > 200 {
				t.Fatalf("frame %d: particle %d escaped to (%f, %f)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestUpdate_OutOfBoundsAfterShrink(t *testing.T) {
	p := Particle{X: 500, Y: 400, VX: 0.1, VY: -0.1}
	p.Update(100, 100)
	if p.X != 100 || p.Y != 100 {
		t.Errorf("expected clamp to (100, 100), got (%f, %f)", p.X, p.Y)
	}
	if p.VX != -0.1 || p.VY != 0.1 {
		t.Errorf("expected both velocities flipped, got (%f, %f)", p.VX, p.VY)
	}
}

func TestOpacity(t *testing.T) {
	if got := Opacity(0, 150, 0.3); got != 0.3 {
		t.Errorf("distance 0: got %f, want 0.3", got)
	}
	if got := Opacity(150, 150, 0.3); got != 0 {
		t.Errorf("distance at threshold: got %f, want 0", got)
	}
	if got := Opacity(75, 150, 0.3); math.Abs(got-0.15) > 1e-12 {
		t.Errorf("half distance: got %f, want 0.15", got)
	}
}

func TestConnect(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 150},  // exactly at threshold from #0
		{X: 400, Y: 400}, // far from everyone
		{X: 0, Y: 0},     // coincident with #0
	}

	edges := Connect(nil, ps, 150, 0.3)

	want := map[[2]int]float64{
		{0, 1}: Opacity(100, 150, 0.3),
		{0, 4}: 0.3,
		{1, 4}: Opacity(100, 150, 0.3),
	}
	if len(edges) != len(want) {
		t.Fatalf("expected %d edges, got %d: %+v", len(want), len(edges), edges)
	}
	for _, e := range edges {
		if e.I >= e.J {
			t.Errorf("edge not ordered: %+v", e)
		}
		op, ok := want[[2]int{e.I, e.J}]
		if !ok {
			t.Errorf("unexpected edge %+v", e)
			continue
		}
		if math.Abs(e.Opacity-op) > 1e-12 {
			t.Errorf("edge %d-%d opacity %f, want %f", e.I, e.J, e.Opacity, op)
		}
	}
}

func TestConnect_DoesNotMutate(t *testing.T) {
	ps := []Particle{{X: 1, Y: 2, VX: 3, VY: 4}, {X: 5, Y: 6, VX: 7, VY: 8}}
	before := append([]Particle(nil), ps...)
	Connect(nil, ps, 150, 0.3)
	for i := range ps {
		if ps[i] != before[i] {
			t.Errorf("particle %d changed: %+v -> %+v", i, before[i], ps[i])
		}
	}
}
