package reveal

// Entry reports the visibility of one observed card.
type Entry struct {
	Target       *Card
	Ratio        float64
	Intersecting bool
}

type observation struct {
	card         *Card
	reported     bool
	intersecting bool
}

// Observer tracks how much of each card lies inside the viewport and calls
// back when a card crosses the threshold in either direction. A freshly
// observed card is always reported on the next Check.
type Observer struct {
	threshold float64
	callback  func([]Entry)
	targets   []*observation
}

func NewObserver(threshold float64, callback func([]Entry)) *Observer {
	return &Observer{threshold: threshold, callback: callback}
}

func (o *Observer) Observe(c *Card) {
	for _, t := range o.targets {
		if t.card == c {
			return
		}
	}
	o.targets = append(o.targets, &observation{card: c})
}

func (o *Observer) Unobserve(c *Card) {
	for i, t := range o.targets {
		if t.card == c {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

// Check measures every target against viewport and invokes the callback
// once with the entries whose state changed. Nothing is called when no
// state changed.
func (o *Observer) Check(viewport Rect) {
	var entries []Entry
	for _, t := range o.targets {
		ratio := Ratio(t.card.Bounds, viewport)
		in := ratio > 0 && ratio >= o.threshold
		if t.reported && in == t.intersecting {
			continue
		}
		t.reported = true
		t.intersecting = in
		entries = append(entries, Entry{Target: t.card, Ratio: ratio, Intersecting: in})
	}
	if len(entries) > 0 {
		o.callback(entries)
	}
}

// Ratio is the visible fraction of target inside viewport.
func Ratio(target, viewport Rect) float64 {
	area := target.Area()
	if area == 0 {
		return 0
	}
	return target.Intersect(viewport).Area() / area
}

// Watch observes every card and reveals each one the first time at least
// threshold of it is visible.
func Watch(cards []*Card, threshold float64) *Observer {
	o := NewObserver(threshold, func(entries []Entry) {
		for _, e := range entries {
			if e.Intersecting {
				e.Target.Reveal()
			}
		}
	})
	for _, c := range cards {
		o.Observe(c)
	}
	return o
}
