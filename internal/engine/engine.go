// Package engine owns the particle set and draws one frame of the
// background at a time: background fill, grid, particles, then the lines
// between nearby particles.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/olivierh59500/backdrop/internal/config"
	"github.com/olivierh59500/backdrop/internal/particle"
	"github.com/olivierh59500/backdrop/internal/surface"
)

// Stats describes what a single Step drew.
type Stats struct {
	Frame     uint64
	GridLines int
	Particles int
	Edges     int
}

type Engine struct {
	cfg     *config.Config
	palette config.Palette
	rng     *rand.Rand
	flow    *flowField
	onFrame func(Stats)

	width, height float64
	particles     []particle.Particle
	edges         []particle.Edge // scratch, reused every frame
	frame         uint64
}

type Option func(*Engine)

// WithRand replaces the seeded generator, mostly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithFrameHook registers fn to receive the stats of every Step.
func WithFrameHook(fn func(Stats)) Option {
	return func(e *Engine) { e.onFrame = fn }
}

// New sizes the engine to the viewport and creates cfg.ParticleCount particles.
func New(cfg *config.Config, width, height int, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		palette: pal,
		rng:     rand.New(rand.NewSource(seed)),
		flow:    newFlowField(cfg.Flow, seed),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Resize(width, height)

	e.particles = make([]particle.Particle, cfg.ParticleCount)
	for i := range e.particles {
		e.particles[i] = particle.New(e.rng, e.width, e.height, cfg.ParticleSpeed, pal.Accent1, pal.Accent2)
	}
	return e, nil
}

// Resize reassigns the surface dimensions. Particles keep their positions;
// any that fall outside are clamped back on their next update.
func (e *Engine) Resize(width, height int) {
	e.width = float64(width)
	e.height = float64(height)
}

func (e *Engine) Size() (int, int) { return int(e.width), int(e.height) }

// Particles returns a copy of the current particle state.
func (e *Engine) Particles() []particle.Particle {
	return append([]particle.Particle(nil), e.particles...)
}

// Connections returns the edges for the current positions without moving anything.
func (e *Engine) Connections() []particle.Edge {
	return particle.Connect(nil, e.particles, e.cfg.ConnectionDistance, e.cfg.MaxLineOpacity)
}

func (e *Engine) Frame() uint64 { return e.frame }

// Step draws one full frame onto dst and advances every particle once.
func (e *Engine) Step(dst surface.Surface) Stats {
	e.frame++
	st := Stats{Frame: e.frame}

	dst.FillRect(0, 0, e.width, e.height, e.palette.Background)
	st.GridLines = e.drawGrid(dst)

	for i := range e.particles {
		p := &e.particles[i]
		if e.flow != nil {
			e.flow.steer(p)
		}
		p.Update(e.width, e.height)
		dst.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
	st.Particles = len(e.particles)

	st.Edges = e.drawConnections(dst)

	if e.onFrame != nil {
		e.onFrame(st)
	}
	return st
}

func (e *Engine) drawGrid(dst surface.Surface) int {
	g := float64(e.cfg.GridSize)
	n := 0
	for x := 0.0; x < e.width; x += g {
		dst.StrokeLine(x, 0, x, e.height, 1, e.palette.Grid)
		n++
	}
	for y := 0.0; y < e.height; y += g {
		dst.StrokeLine(0, y, e.width, y, 1, e.palette.Grid)
		n++
	}
	return n
}

func (e *Engine) drawConnections(dst surface.Surface) int {
	e.edges = particle.Connect(e.edges[:0], e.particles, e.cfg.ConnectionDistance, e.cfg.MaxLineOpacity)
	line := e.palette.Line
	for _, edge := range e.edges {
		a, b := e.particles[edge.I], e.particles[edge.J]
		line.A = config.Alpha(edge.Opacity)
		dst.StrokeLine(a.X, a.Y, b.X, b.Y, e.cfg.LineWidth, line)
	}
	return len(e.edges)
}
