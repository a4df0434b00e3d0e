package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screen adapts the ebiten screen image handed to Draw into a surface.Surface.
// The image is swapped in on every Draw.
type screen struct {
	img *ebiten.Image
}

func (s *screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screen) FillRect(x, y, width, height float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(width), float32(height), c, false)
}

func (s *screen) FillCircle(cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), c, true)
}

func (s *screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
