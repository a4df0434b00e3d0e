// Package reveal fades content cards in the first time they scroll into view.
package reveal

import (
	"github.com/charmbracelet/harmonica"
	"github.com/olivierh59500/backdrop/internal/config"
)

// settle is ωt at which a critically damped spring is within 1% of its target.
const settle = 6.6

const (
	CardMaxWidth = 560.0
	CardHeight   = 96.0
	CardGap      = 24.0
	CardMargin   = 32.0
)

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Card is a block of page content with its own entrance state.
type Card struct {
	Title  string
	Body   string
	Bounds Rect

	// Opacity and Offset are what the host should draw: a card at
	// Bounds shifted down by Offset with the given opacity.
	Opacity float64
	Offset  float64

	spring    harmonica.Spring
	maxOffset float64
	progress  float64
	velocity  float64
	revealed  bool
}

// NewCard returns a hidden card, shifted down by cfg.Offset, whose
// transition runs at fps ticks per second and settles in cfg.Duration.
func NewCard(title, body string, cfg config.RevealConfig, fps int) *Card {
	c := &Card{
		Title:     title,
		Body:      body,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), settle/cfg.Duration, 1.0),
		maxOffset: cfg.Offset,
	}
	c.apply()
	return c
}

// Reveal starts the entrance transition. Later calls are no-ops and
// there is no way back to hidden.
func (c *Card) Reveal() { c.revealed = true }

func (c *Card) Revealed() bool { return c.revealed }

// Tick advances the transition by one frame.
func (c *Card) Tick() {
	if !c.revealed {
		return
	}
	c.progress, c.velocity = c.spring.Update(c.progress, c.velocity, 1)
	c.apply()
}

// Settled reports whether the card has reached its final visible state.
func (c *Card) Settled() bool {
	return c.revealed && c.Opacity > 0.99
}

func (c *Card) apply() {
	p := min(max(c.progress, 0), 1)
	c.Opacity = p
	c.Offset = c.maxOffset * (1 - p)
}

// Layout stacks cards in a centered column starting at top.
// It returns the page height needed to hold them.
func Layout(cards []*Card, viewportWidth, top float64) float64 {
	w := min(CardMaxWidth, viewportWidth-2*CardMargin)
	x := (viewportWidth - w) / 2
	y := top
	for _, c := range cards {
		c.Bounds = Rect{X: x, Y: y, W: w, H: CardHeight}
		y += CardHeight + CardGap
	}
	return y + CardMargin
}
