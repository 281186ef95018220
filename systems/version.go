package systems

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const ebitenModule = "github.com/hajimehoshi/ebiten/v2"

// VersionText returns the build and engine versions shown in the overlay.
func VersionText() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return formatVersion("", "", runtime.Version())
	}
	engine := ""
	for _, dep := range info.Deps {
		if dep.Path == ebitenModule {
			engine = dep.Version
			break
		}
	}
	return formatVersion(info.Main.Version, engine, runtime.Version())
}

func formatVersion(app, engine, goVersion string) string {
	if app == "" || app == "(devel)" {
		app = "dev"
	}
	if engine == "" {
		engine = "unknown"
	}
	return fmt.Sprintf("Version: %s\nEbiten: %s  Go: %s", app, engine, goVersion)
}
