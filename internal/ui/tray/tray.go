package tray

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/format"
	"pomodoro/resources"
)

// MenuHost receives the tray menu and icon. fyne's desktop.App satisfies it.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePlay  func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	statusItem *fyne.MenuItem
	playItem   *fyne.MenuItem
	stopItem   *fyne.MenuItem
	showItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	phase      session.Phase
	iconSet    bool
}

// New creates a tray manager and installs the idle menu.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host: host,
	}

	manager.statusItem = fyne.NewMenuItem("Idle", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("Show timer", action(callbacks.OnShow))
	manager.playItem = fyne.NewMenuItem("Start", action(callbacks.OnTogglePlay))
	manager.stopItem = fyne.NewMenuItem("Stop", action(callbacks.OnStop))
	manager.prefsItem = fyne.NewMenuItem("Preferences", action(callbacks.OnPreferences))
	manager.quitItem = fyne.NewMenuItem("Quit", action(callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.Update(timekeeper.Snapshot{})
	return manager
}

// Update mirrors a controller snapshot into the menu. Must run on the fyne
// goroutine.
func (manager *Manager) Update(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = statusLabel(snapshot)
	manager.playItem.Label = playLabel(snapshot)
	manager.stopItem.Disabled = !snapshot.Active
	manager.refreshIcon(snapshot.Phase)
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon(phase session.Phase) {
	if manager.host == nil || (manager.iconSet && phase == manager.phase) {
		return
	}
	manager.phase = phase
	manager.iconSet = true
	manager.host.SetSystemTrayIcon(resources.PhaseIcon(phase))
}

func action(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.playItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	))
}

func statusLabel(snapshot timekeeper.Snapshot) string {
	if !snapshot.Active {
		return "Idle"
	}
	status := snapshot.Label + " " + format.Clock(snapshot.RemainingSeconds)
	if !snapshot.Armed {
		status += " (paused)"
	}
	return status
}

func playLabel(snapshot timekeeper.Snapshot) string {
	switch {
	case !snapshot.Active:
		return "Start"
	case snapshot.Armed:
		return "Pause"
	default:
		return "Resume"
	}
}
