package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/backdrop/internal/config"
)

var (
	cardFill   = color.NRGBA{0x16, 0x17, 0x20, 0xFF}
	cardBorder = color.NRGBA{0x86, 0x86, 0x8B, 0xFF}
)

// drawCards paints every card that has started its entrance, shifted by
// its current offset and faded by its current opacity.
func (g *Game) drawCards(scr *ebiten.Image) {
	for _, c := range g.cards {
		if c.Opacity <= 0 {
			continue
		}
		x := float32(c.Bounds.X)
		y := float32(c.Bounds.Y - g.scroll + c.Offset)
		w, h := float32(c.Bounds.W), float32(c.Bounds.H)
		if y > float32(g.height) || y+h < 0 {
			continue
		}

		fill := cardFill
		fill.A = config.Alpha(c.Opacity * 0.85)
		border := cardBorder
		border.A = config.Alpha(c.Opacity * 0.25)
		vector.DrawFilledRect(scr, x, y, w, h, fill, false)
		vector.StrokeRect(scr, x, y, w, h, 1, border, false)

		// debug text has no alpha, hold it back until the card is mostly in
		if c.Opacity > 0.5 {
			ebitenutil.DebugPrintAt(scr, c.Title, int(x)+16, int(y)+16)
			ebitenutil.DebugPrintAt(scr, c.Body, int(x)+16, int(y)+40)
		}
	}
}
