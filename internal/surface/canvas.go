package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas rasterizes onto an in-memory RGBA image with anti-aliased shapes.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{z: vector.NewRasterizer(width, height)}
	c.Resize(width, height)
	return c
}

// Resize reallocates the backing image, which leaves it fully transparent.
func (c *Canvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the pixels drawn so far.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillRect(x, y, width, height float64, col color.Color) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	c.begin()
	x, y, r := float32(cx), float32(cy), float32(radius)
	k := r * kappa
	c.z.MoveTo(x+r, y)
	c.z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	c.z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	c.z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	c.z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	c.z.ClosePath()
	c.fill(col)
}

// StrokeLine fills the rectangle of the given width centered on the segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx := float32(-dy / length * width / 2)
	ny := float32(dx / length * width / 2)

	c.begin()
	c.z.MoveTo(float32(x0)+nx, float32(y0)+ny)
	c.z.LineTo(float32(x1)+nx, float32(y1)+ny)
	c.z.LineTo(float32(x1)-nx, float32(y1)-ny)
	c.z.LineTo(float32(x0)-nx, float32(y0)-ny)
	c.z.ClosePath()
	c.fill(col)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) fill(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}
