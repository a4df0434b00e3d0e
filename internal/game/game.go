// Package game hosts the background and its cards in an ebiten window.
// ebiten provides the frame callback (Draw), the resize notification
// (Layout) and the screen the engine paints on.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/olivierh59500/backdrop/internal/config"
	"github.com/olivierh59500/backdrop/internal/engine"
	"github.com/olivierh59500/backdrop/internal/reveal"
)

const scrollStep = 40.0

// Game implements ebiten.Game and engine.Scheduler.
type Game struct {
	cfg     *config.Config
	cfgPath string

	eng     *engine.Engine
	screen  screen
	pending func()

	width, height int

	cards      []*reveal.Card
	observer   *reveal.Observer
	pageHeight float64
	scroll     float64

	showHUD bool
	status  string
}

// New builds the engine and cards for cfg. cfgPath is where S saves to.
func New(cfg *config.Config, cfgPath string) (*Game, error) {
	g := &Game{
		cfgPath: cfgPath,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// apply swaps in a new configuration: fresh particles, fresh hidden cards.
func (g *Game) apply(cfg *config.Config) error {
	eng, err := engine.New(cfg, g.width, g.height)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	cards := make([]*reveal.Card, len(cfg.Cards))
	for i, c := range cfg.Cards {
		cards[i] = reveal.NewCard(c.Title, c.Body, cfg.Reveal, cfg.Window.TPS)
	}

	g.cfg = cfg
	g.eng = eng
	g.cards = cards
	g.observer = reveal.Watch(cards, cfg.Reveal.Threshold)
	g.scroll = 0
	g.layoutCards()

	// The previous engine's loop ends here: its next frame request is
	// overwritten by the new engine's first one.
	g.eng.Animate(&g.screen, g)
	return nil
}

// RequestFrame queues fn to run on the next Draw.
func (g *Game) RequestFrame(fn func()) { g.pending = fn }

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	g.observer.Check(g.viewport())
	for _, c := range g.cards {
		c.Tick()
	}
	return nil
}

func (g *Game) Draw(scr *ebiten.Image) {
	g.screen.img = scr
	if fn := g.pending; fn != nil {
		g.pending = nil
		fn()
	}

	g.drawCards(scr)

	if g.showHUD {
		ebitenutil.DebugPrintAt(scr, fmt.Sprintf("%.0f fps  frame %d  %dx%d",
			ebiten.ActualFPS(), g.eng.Frame(), g.width, g.height), 12, 12)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(scr, g.status, 12, g.height-24)
	}
}

// Layout doubles as the resize notification: the surface always matches
// the window, and the engine learns about new dimensions here.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	g.eng.Resize(width, height)
	g.layoutCards()
}

func (g *Game) layoutCards() {
	g.pageHeight = reveal.Layout(g.cards, float64(g.width), float64(g.height)*0.55)
	g.clampScroll()
}

func (g *Game) clampScroll() {
	g.scroll = min(max(g.scroll, 0), max(g.pageHeight-float64(g.height), 0))
}

func (g *Game) viewport() reveal.Rect {
	return reveal.Rect{X: 0, Y: g.scroll, W: float64(g.width), H: float64(g.height)}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, cfgPath string) error {
	g, err := New(cfg, cfgPath)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Printf("backdrop: %d particles, %dx%d", cfg.ParticleCount, cfg.Window.Width, cfg.Window.Height)
	return ebiten.RunGame(g)
}
