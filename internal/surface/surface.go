// Package surface defines the immediate-mode 2D target the engine draws on,
// plus two implementations that need no display: a command recorder and a
// software raster canvas.
package surface

import "image/color"

// Surface is a drawing target. Every call is independent; no path or style
// state carries over between calls.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, width, height float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Discard is a fixed-size surface that drops every call.
type Discard struct {
	W, H int
}

func (d Discard) Size() (int, int) { return d.W, d.H }

func (Discard) FillRect(x, y, width, height float64, c color.Color) {}

func (Discard) FillCircle(cx, cy, radius float64, c color.Color) {}

func (Discard) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {}

type OpKind int

const (
	OpRect OpKind = iota
	OpCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	}
	return "unknown"
}

// Op is one recorded drawing call. Rects use X0,Y0 as origin and X1,Y1 as
// size; circles use X0,Y0 as center and Width as radius.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
}

// Recorder keeps every call instead of rasterizing it.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Resize reassigns the dimensions and, like a real surface, drops what was drawn.
func (r *Recorder) Resize(width, height int) {
	r.W, r.H = width, height
	r.Ops = r.Ops[:0]
}

// Reset drops recorded calls without touching the size.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) FillRect(x, y, width, height float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X0: x, Y0: y, X1: width, Y1: height, Color: nrgba(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, Width: radius, Color: nrgba(c)})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: nrgba(c)})
}

// Filter returns the recorded calls of one kind, in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
