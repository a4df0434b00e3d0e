package particle

import (
	"image/color"
	"math/rand"
)

const (
	MinRadius   = 1.0
	RadiusRange = 2.0
)

// Particle is a single drifting point. Color is chosen at creation and never changes.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity in pixels per frame
	Radius float64
	Color  color.NRGBA
}

// New places a particle uniformly inside width×height with a velocity in
// (-speed/2, speed/2) on each axis and picks one of the two accents with
// equal odds.
func New(rng *rand.Rand, width, height, speed float64, accent1, accent2 color.NRGBA) Particle {
	p := Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		VX:     (rng.Float64() - 0.5) * speed,
		VY:     (rng.Float64() - 0.5) * speed,
		Radius: rng.Float64()*RadiusRange + MinRadius,
		Color:  accent2,
	}
	if rng.Float64() > 0.5 {
		p.Color = accent1
	}
	return p
}

// Update advances the particle one frame inside a width×height box.
// The velocity flip is decided on the unclamped position, so a particle
// resting on an edge with outward velocity flips every frame until it
// drifts back in.
func (p *Particle) Update(width, height float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}

	p.X = clamp(p.X, 0, width)
	p.Y = clamp(p.Y, 0, height)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
