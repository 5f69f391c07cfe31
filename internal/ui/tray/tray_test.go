package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
)

type recordingHost struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (host *recordingHost) SetSystemTrayIcon(icon fyne.Resource) {
	host.icons = append(host.icons, icon)
}

func (host *recordingHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func (host *recordingHost) last() *fyne.Menu {
	return host.menus[len(host.menus)-1]
}

func item(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, candidate := range menu.Items {
		if candidate.Label == label {
			return candidate
		}
	}
	require.Failf(t, "menu item not found", "label %q", label)
	return nil
}

func TestIdleMenu(t *testing.T) {
	host := &recordingHost{}
	New(host, Callbacks{})

	require.Len(t, host.menus, 1)
	menu := host.last()
	assert.Equal(t, "Idle", menu.Items[0].Label)
	assert.True(t, item(t, menu, "Stop").Disabled)
	assert.False(t, item(t, menu, "Start").Disabled)
}

func TestUpdateReflectsSession(t *testing.T) {
	host := &recordingHost{}
	manager := New(host, Callbacks{})

	running := timekeeper.Snapshot{
		Active:           true,
		Phase:            session.PhaseFocusing,
		Label:            "Focusing",
		RemainingSeconds: 754,
		Armed:            true,
	}
	manager.Update(running)
	menu := host.last()
	assert.Equal(t, "Focusing 12:34", menu.Items[0].Label)
	assert.False(t, item(t, menu, "Stop").Disabled)
	item(t, menu, "Pause")

	running.Armed = false
	manager.Update(running)
	menu = host.last()
	assert.Equal(t, "Focusing 12:34 (paused)", menu.Items[0].Label)
	item(t, menu, "Resume")
}

func TestIconFollowsPhase(t *testing.T) {
	host := &recordingHost{}
	manager := New(host, Callbacks{})
	require.Len(t, host.icons, 1)
	assert.Equal(t, "icons/idle.svg", host.icons[0].Name())

	focusing := timekeeper.Snapshot{Active: true, Phase: session.PhaseFocusing, Label: "Focusing"}
	manager.Update(focusing)
	manager.Update(focusing)
	require.Len(t, host.icons, 2)
	assert.Equal(t, "icons/focus.svg", host.icons[1].Name())

	manager.Update(timekeeper.Snapshot{Active: true, Phase: session.PhaseOnBreak, Label: "On Break"})
	require.Len(t, host.icons, 3)
	assert.Equal(t, "icons/break.svg", host.icons[2].Name())
}

func TestCallbacks(t *testing.T) {
	host := &recordingHost{}
	var played, stopped, shown int
	New(host, Callbacks{
		OnTogglePlay: func() { played++ },
		OnStop:       func() { stopped++ },
		OnShow:       func() { shown++ },
	})

	menu := host.last()
	item(t, menu, "Start").Action()
	item(t, menu, "Stop").Action()
	item(t, menu, "Show timer").Action()
	item(t, menu, "Preferences").Action()

	assert.Equal(t, 1, played)
	assert.Equal(t, 1, stopped)
	assert.Equal(t, 1, shown)
}
