package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/olivierh59500/backdrop/internal/config"
)

const defaultSavePath = "backdrop.yaml"

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.status = err.Error()
			log.Printf("open config: %v", err)
		}
	}

	// Scroll the cards
	_, wheelY := ebiten.Wheel()
	g.scroll -= wheelY * scrollStep
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scroll += scrollStep / 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scroll -= scrollStep / 4
	}
	g.clampScroll()
	return nil
}

func (g *Game) savePath() string {
	if g.cfgPath != "" {
		return g.cfgPath
	}
	return defaultSavePath
}

func (g *Game) saveConfig() {
	path := g.savePath()
	if err := config.Save(path, g.cfg); err != nil {
		g.status = fmt.Sprintf("save failed: %v", err)
		log.Printf("save config: %v", err)
		return
	}
	g.status = "saved " + path
	log.Printf("saved config to %s", path)
}

// openConfigDialog lets the user pick a YAML file and restarts the
// animation with it. Cancelling the dialog is not an error.
func (g *Game) openConfigDialog() error {
	path, err := zenity.SelectFile(
		zenity.Title("Open backdrop config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := g.apply(cfg); err != nil {
		return err
	}
	g.cfgPath = path
	g.status = "loaded " + path
	log.Printf("loaded config from %s", path)
	return nil
}
