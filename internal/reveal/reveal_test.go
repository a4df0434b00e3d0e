package reveal

import (
	"math"
	"testing"

	"github.com/olivierh59500/backdrop/internal/config"
)

func newCard(y float64) *Card {
	c := NewCard("t", "b", config.DefaultConfig().Reveal, 60)
	c.Bounds = Rect{X: 0, Y: y, W: 100, H: 100}
	return c
}

func TestNewCard_Hidden(t *testing.T) {
	c := newCard(0)
	if c.Opacity != 0 || c.Offset != 20 {
		t.Errorf("expected hidden card offset by 20, got opacity %f offset %f", c.Opacity, c.Offset)
	}
	c.Tick()
	if c.Opacity != 0 || c.Revealed() {
		t.Error("unrevealed card should not animate")
	}
}

func TestCard_Transition(t *testing.T) {
	c := newCard(0)
	c.Reveal()
	c.Tick()
	if c.Opacity <= 0 || c.Opacity >= 1 {
		t.Errorf("expected partial opacity after one tick, got %f", c.Opacity)
	}
	if c.Offset >= 20 || c.Offset <= 0 {
		t.Errorf("expected partial offset after one tick, got %f", c.Offset)
	}

	prev := c.Opacity
	for i := 0; i < 60; i++ {
		c.Tick()
		if c.Opacity < prev {
			t.Fatalf("opacity went backwards at tick %d: %f < %f", i, c.Opacity, prev)
		}
		prev = c.Opacity
	}
	if !c.Settled() {
		t.Errorf("expected card settled after one second, opacity %f", c.Opacity)
	}
	if c.Offset > 0.2 {
		t.Errorf("expected offset near zero, got %f", c.Offset)
	}
}

func TestRatio(t *testing.T) {
	vp := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		target Rect
		want   float64
	}{
		{Rect{X: 0, Y: 0, W: 50, H: 50}, 1},
		{Rect{X: 0, Y: 90, W: 100, H: 100}, 0.1},
		{Rect{X: 0, Y: 100, W: 100, H: 100}, 0},
		{Rect{X: 50, Y: 50, W: 100, H: 100}, 0.25},
		{Rect{}, 0},
	}
	for _, tt := range tests {
		if got := Ratio(tt.target, vp); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Ratio(%+v) = %f, want %f", tt.target, got, tt.want)
		}
	}
}

func TestObserver_ReportsChanges(t *testing.T) {
	a, b := newCard(0), newCard(500)
	var calls [][]Entry
	o := NewObserver(0.1, func(e []Entry) { calls = append(calls, e) })
	o.Observe(a)
	o.Observe(b)
	o.Observe(a)

	vp := Rect{W: 100, H: 200}
	o.Check(vp)
	if len(calls) != 1 || len(calls[0]) != 2 {
		t.Fatalf("first check should report both targets, got %+v", calls)
	}
	if !calls[0][0].Intersecting || calls[0][1].Intersecting {
		t.Errorf("unexpected initial states %+v", calls[0])
	}

	o.Check(vp)
	if len(calls) != 1 {
		t.Errorf("unchanged state should not call back, got %d calls", len(calls))
	}

	vp.Y = 420 // b is fully visible, a is gone
	o.Check(vp)
	if len(calls) != 2 || len(calls[1]) != 2 {
		t.Fatalf("expected both to change, got %+v", calls)
	}

	o.Unobserve(b)
	vp.Y = 0
	o.Check(vp)
	if len(calls[2]) != 1 || calls[2][0].Target != a {
		t.Errorf("unobserved card should not be reported: %+v", calls[2])
	}
}

func TestObserver_Threshold(t *testing.T) {
	c := newCard(195) // 5 of 100 px visible
	var got []Entry
	o := NewObserver(0.1, func(e []Entry) { got = append(got, e...) })
	o.Observe(c)

	o.Check(Rect{W: 100, H: 200})
	if len(got) != 1 || got[0].Intersecting {
		t.Fatalf("5%% visible should be below threshold: %+v", got)
	}

	o.Check(Rect{Y: 10, W: 100, H: 200})
	if len(got) != 2 || !got[1].Intersecting || math.Abs(got[1].Ratio-0.15) > 1e-12 {
		t.Errorf("15%% visible should cross threshold: %+v", got)
	}
}

func TestWatch_OneShot(t *testing.T) {
	cards := []*Card{newCard(0), newCard(1000)}
	o := Watch(cards, 0.1)

	o.Check(Rect{W: 100, H: 300})
	if !cards[0].Revealed() || cards[1].Revealed() {
		t.Fatal("only the visible card should be revealed")
	}

	// scroll away and back: the first card stays revealed
	o.Check(Rect{Y: 900, W: 100, H: 300})
	if !cards[0].Revealed() || !cards[1].Revealed() {
		t.Error("reveal must never reverse")
	}
}

func TestLayout(t *testing.T) {
	cards := []*Card{newCard(0), newCard(0), newCard(0)}
	height := Layout(cards, 800, 400)

	for i, c := range cards {
		if c.Bounds.W != CardMaxWidth {
			t.Errorf("card %d width %f", i, c.Bounds.W)
		}
		if c.Bounds.X != (800-CardMaxWidth)/2 {
			t.Errorf("card %d not centered: x=%f", i, c.Bounds.X)
		}
		if want := 400 + float64(i)*(CardHeight+CardGap); c.Bounds.Y != want {
			t.Errorf("card %d y=%f, want %f", i, c.Bounds.Y, want)
		}
	}
	if want := 400 + 3*(CardHeight+CardGap) + CardMargin; height != want {
		t.Errorf("page height %f, want %f", height, want)
	}

	Layout(cards, 300, 0)
	if cards[0].Bounds.W != 300-2*CardMargin {
		t.Errorf("narrow viewport width %f", cards[0].Bounds.W)
	}
}
