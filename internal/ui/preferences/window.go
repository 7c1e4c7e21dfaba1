package preferences

import (
	"fmt"

	"deepworktimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Store is the settings writer the window saves through.
type Store interface {
	Snapshot() model.Settings
	Update(mutate func(*model.Settings)) error
}

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	store        Store
	onSave       func(model.Settings)
	opacity      *widget.Slider
	opacityValue *widget.Label
	hotkeys      *widget.Check
	notification *widget.Entry
	status       *widget.Label
	saveButton   *widget.Button
}

// New creates a preferences window. onSave receives the settings after a
// successful write.
func New(app fyne.App, store Store, onSave func(model.Settings)) *Window {
	window := app.NewWindow("DeepWork Timer Settings")

	opacity := widget.NewSlider(minOpacity, maxOpacity)
	opacity.Step = 0.05
	opacityValue := widget.NewLabel("")
	opacity.OnChanged = func(value float64) {
		opacityValue.SetText(fmt.Sprintf("%.0f%%", value*100))
	}

	hotkeys := widget.NewCheck("Enable global hotkeys (applies on restart)", nil)
	notification := widget.NewEntry()
	status := widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Overlay", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Opacity"), opacityValue, opacity),
		container.NewBorder(nil, nil, widget.NewLabel("Notification duration"), widget.NewLabel("ms"), notification),
		hotkeys,
		status,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 240))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:       window,
		store:        store,
		onSave:       onSave,
		opacity:      opacity,
		opacityValue: opacityValue,
		hotkeys:      hotkeys,
		notification: notification,
		status:       status,
		saveButton:   saveButton,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	prefs.load(FormFrom(store.Snapshot()))
	return prefs
}

// Show reloads the stored values and displays the window.
func (prefs *Window) Show() {
	prefs.load(FormFrom(prefs.store.Snapshot()))
	prefs.status.SetText("")
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) load(form Form) {
	prefs.opacity.SetValue(form.Opacity)
	prefs.hotkeys.SetChecked(form.GlobalHotkeysEnabled)
	prefs.notification.SetText(form.NotificationMillis)
}

func (prefs *Window) current() Form {
	return Form{
		Opacity:              prefs.opacity.Value,
		GlobalHotkeysEnabled: prefs.hotkeys.Checked,
		NotificationMillis:   prefs.notification.Text,
	}
}

func (prefs *Window) handleSave() {
	form := prefs.current()
	if err := prefs.store.Update(form.Apply); err != nil {
		prefs.status.SetText("Could not save settings: " + err.Error())
		return
	}
	if prefs.onSave != nil {
		prefs.onSave(prefs.store.Snapshot())
	}
	prefs.window.Hide()
}
