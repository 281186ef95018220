package main

import (
	"log"
	"os"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/fonts"
	"github.com/automoto/gfxtier/scenes"
	"github.com/automoto/gfxtier/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

func NewGame(host *systems.EbitenHost, saved *systems.SavedOptions) *Game {
	fonts.LoadDefaults()
	if path := os.Getenv(cfg.Options.FontFileEnv); path != "" {
		if err := fonts.LoadFile(path); err != nil {
			log.Printf("Warning: Could not load font %s: %v", path, err)
		}
	}

	return &Game{scene: scenes.NewOptionsScene(host, saved)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	if err := cfg.LoadTiersFromEnv(); err != nil {
		log.Fatalf("Failed to load tier tables: %v", err)
	}

	ebiten.SetWindowTitle("gfxtier")
	ebiten.SetWindowSize(cfg.Options.FallbackWidth, cfg.Options.FallbackHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved options
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadOptions()
	if err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(systems.NewEbitenHost(), saved)); err != nil {
		log.Fatal(err)
	}
}
