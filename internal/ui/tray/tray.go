package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "DeepWork Timer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences        func()
	OnNextScreen         func()
	OnPreviousScreen     func()
	OnCenter             func()
	OnSetPreferred       func()
	OnToggleClickThrough func()
	OnQuit               func()
}

// Manager handles system tray state.
type Manager struct {
	app          desktop.App
	callbacks    Callbacks
	statusItem   *fyne.MenuItem
	clickItem    *fyne.MenuItem
	statusLabel  string
	clickThrough bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.clickItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnToggleClickThrough))

	manager.refreshStatus()
	return manager
}

// Menu builds the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Next screen", invoke(&manager.callbacks.OnNextScreen)),
		fyne.NewMenuItem("Previous screen", invoke(&manager.callbacks.OnPreviousScreen)),
		fyne.NewMenuItem("Center", invoke(&manager.callbacks.OnCenter)),
		fyne.NewMenuItem("Set preferred screen", invoke(&manager.callbacks.OnSetPreferred)),
		manager.clickItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetClickThrough updates the click-through item label.
func (manager *Manager) SetClickThrough(enabled bool) {
	manager.clickThrough = enabled
	manager.refreshStatus()
}

// StatusLabel returns the label shown on the status item.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	if manager.clickThrough {
		manager.clickItem.Label = "Disable click-through"
	} else {
		manager.clickItem.Label = "Enable click-through"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// invoke reads the callback at call time so handlers can be replaced after
// the menu is built.
func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
