package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/session"
)

const iconDir = "icons/"

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// AppIcon is the icon used for windows and the idle tray.
func AppIcon() fyne.Resource {
	return MustIcon("idle.svg")
}

// PhaseIcon returns the tray icon for a phase. An empty phase means no
// session.
func PhaseIcon(phase session.Phase) fyne.Resource {
	switch phase {
	case session.PhaseFocusing:
		return MustIcon("focus.svg")
	case session.PhaseOnBreak:
		return MustIcon("break.svg")
	default:
		return AppIcon()
	}
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
