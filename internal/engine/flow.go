package engine

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/olivierh59500/backdrop/internal/config"
	"github.com/olivierh59500/backdrop/internal/particle"
)

// flowField bends particle headings along a perlin noise field while
// keeping each particle's speed.
type flowField struct {
	noise    *perlin.Perlin
	strength float64
	scale    float64
}

func newFlowField(cfg config.FlowConfig, seed int64) *flowField {
	if cfg.Strength == 0 {
		return nil
	}
	return &flowField{
		noise:    perlin.NewPerlin(2, 2, 3, seed),
		strength: cfg.Strength,
		scale:    cfg.Scale,
	}
}

func (f *flowField) angle(x, y float64) float64 {
	return (f.noise.Noise2D(x*f.scale, y*f.scale) + 1) / 2 * 2 * math.Pi
}

func (f *flowField) steer(p *particle.Particle) {
	speed := math.Hypot(p.VX, p.VY)
	if speed == 0 {
		return
	}
	a := f.angle(p.X, p.Y)
	vx := p.VX + math.Cos(a)*f.strength
	vy := p.VY + math.Sin(a)*f.strength
	n := math.Hypot(vx, vy)
	if n == 0 {
		return
	}
	p.VX = vx / n * speed
	p.VY = vy / n * speed
}
