package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gfxtier/config"
	"github.com/automoto/gfxtier/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OptionsScene applies the graphics options and shows the result
type OptionsScene struct {
	ecs   *ecs.ECS
	host  *systems.EbitenHost
	saved *systems.SavedOptions
	once  sync.Once
}

// NewOptionsScene creates the options scene. saved may be nil.
func NewOptionsScene(host *systems.EbitenHost, saved *systems.SavedOptions) *OptionsScene {
	return &OptionsScene{host: host, saved: saved}
}

func (sc *OptionsScene) Update() {
	sc.once.Do(sc.configure)
	sc.ecs.Update()
}

func (sc *OptionsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if sc.ecs == nil {
		return
	}
	sc.ecs.Draw(screen)
}

// Layout scales the outside size by the current screen percentage.
func (sc *OptionsScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return sc.host.RenderSize(outsideWidth, outsideHeight)
}

func (sc *OptionsScene) configure() {
	sc.ecs = ecs.NewECS(donburi.NewWorld())

	// Saved preferences first so the first apply starts from them
	systems.ApplySavedOptions(sc.ecs, sc.saved)

	sc.ecs.AddSystem(systems.NewUpdateOptions(sc.host.Host()))
	sc.ecs.AddRenderer(cfg.Default, systems.DrawOptions)
}
