package overlay

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"deepworktimer/internal/core/command"
	"deepworktimer/internal/core/model"
	"deepworktimer/internal/core/placement"
	"deepworktimer/internal/core/schedule"
	"deepworktimer/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// Config defines overlay visuals.
type Config struct {
	Opacity      float64
	ClickThrough bool
}

// Window manages the countdown overlay.
type Window struct {
	app     fyne.App
	window  fyne.Window
	control platform.WindowControl
	logger  *slog.Logger
	config  Config
	handle  platform.WindowHandle

	background     *canvas.Rectangle
	clockLabel     *canvas.Text
	phaseLabel     *canvas.Text
	remainingLabel *canvas.Text
	nextLabel      *canvas.Text
	infoLabel      *canvas.Text
	noticeLabel    *canvas.Text

	noticeSeq uint64
}

const (
	overlayWidth = float32(340)
)

var (
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mutedColor  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	noticeColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay window. It is not shown until Show.
func New(app fyne.App, config Config, control platform.WindowControl, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}
	window := app.NewWindow("DeepWork Timer")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: opacityAlpha(config.Opacity)})

	clockLabel := newText("--:--:--", mutedColor, 13, false)
	phaseLabel := newText(schedule.Snapshot{}.CurrentName(), hexColor(model.NoPhaseColor), 22, true)
	remainingLabel := newText("00:00", textColor, 34, true)
	nextLabel := newText("", mutedColor, 14, false)
	infoLabel := newText("", mutedColor, 11, false)
	noticeLabel := newText("", noticeColor, 13, true)

	content := container.New(&stackLayout{},
		clockLabel, phaseLabel, remainingLabel, nextLabel, infoLabel, noticeLabel)
	window.SetContent(container.NewStack(background, content))

	overlay := &Window{
		app:            app,
		window:         window,
		control:        control,
		logger:         logger,
		config:         config,
		background:     background,
		clockLabel:     clockLabel,
		phaseLabel:     phaseLabel,
		remainingLabel: remainingLabel,
		nextLabel:      nextLabel,
		infoLabel:      infoLabel,
		noticeLabel:    noticeLabel,
	}
	overlay.resize()
	return overlay
}

// FyneWindow exposes the underlying window for lifecycle hooks.
func (overlay *Window) FyneWindow() fyne.Window {
	return overlay.window
}

// Show displays the overlay and applies native styles once the handle exists.
func (overlay *Window) Show() {
	overlay.window.Show()
	overlay.ApplyNative()
}

// ApplyNative re-applies topmost, opacity and click-through on the native
// window. Windows can drop extended styles when focus changes, so this is
// called again from lifecycle hooks.
func (overlay *Window) ApplyNative() {
	handle := overlay.nativeHandle()
	if err := overlay.control.SetTopmost(handle); err != nil {
		overlay.logger.Debug("Failed to set topmost", slog.String("error", err.Error()))
	}
	overlay.applyOpacity()
	if err := overlay.control.SetClickThrough(handle, overlay.config.ClickThrough); err != nil {
		overlay.logger.Warn("Failed to apply click-through", slog.String("error", err.Error()))
	}
}

// Render updates the labels from a tracker update. Identity-dependent labels
// are only rewritten when the diff reports a change.
func (overlay *Window) Render(update schedule.Update) {
	snapshot := update.Snapshot
	overlay.clockLabel.Text = snapshot.ClockText()
	overlay.remainingLabel.Text = snapshot.RemainingText()
	overlay.clockLabel.Refresh()
	overlay.remainingLabel.Refresh()

	if update.CurrentChanged {
		overlay.phaseLabel.Text = snapshot.CurrentName()
		overlay.phaseLabel.Color = hexColor(snapshot.Color())
		overlay.phaseLabel.Refresh()
	}
	if update.NextChanged {
		overlay.nextLabel.Text = fmt.Sprintf("Next: %s at %s", snapshot.NextName(), snapshot.NextStart())
		overlay.nextLabel.Refresh()
	}
	if update.Changed() {
		overlay.infoLabel.Text = snapshot.Info()
		overlay.infoLabel.Refresh()
	}
}

// ShowNotice displays a transient message. A non-positive duration disables
// notices. A newer notice replaces an older one, and the older one's timer
// no longer clears it.
func (overlay *Window) ShowNotice(notice placement.Notice) {
	if notice.Duration <= 0 || notice.Message == "" {
		return
	}
	overlay.noticeSeq++
	seq := overlay.noticeSeq
	overlay.noticeLabel.Text = notice.Message
	overlay.noticeLabel.Refresh()

	time.AfterFunc(notice.Duration, func() {
		fyne.Do(func() {
			overlay.expireNotice(seq)
		})
	})
}

func (overlay *Window) expireNotice(seq uint64) {
	if seq != overlay.noticeSeq {
		return
	}
	overlay.noticeLabel.Text = ""
	overlay.noticeLabel.Refresh()
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.applyOpacity()
	if err := overlay.control.SetClickThrough(overlay.nativeHandle(), config.ClickThrough); err != nil {
		overlay.logger.Warn("Failed to apply click-through", slog.String("error", err.Error()))
	}
}

// SetClickThrough enables or disables pointer passthrough.
func (overlay *Window) SetClickThrough(enabled bool) error {
	overlay.config.ClickThrough = enabled
	if err := overlay.control.SetClickThrough(overlay.nativeHandle(), enabled); err != nil {
		return fmt.Errorf("set click-through: %w", err)
	}
	return nil
}

// IsClickThrough reports the native passthrough state, falling back to the
// requested state when the window cannot be queried.
func (overlay *Window) IsClickThrough() bool {
	enabled, err := overlay.control.IsClickThrough(overlay.nativeHandle())
	if err != nil {
		return overlay.config.ClickThrough
	}
	return enabled
}

// ToggleClickThrough flips passthrough and returns the new state.
func (overlay *Window) ToggleClickThrough() (bool, error) {
	enabled := !overlay.IsClickThrough()
	return enabled, overlay.SetClickThrough(enabled)
}

// InstallShortcuts binds every chord of keyboard as a canvas shortcut. They
// only fire while the overlay has focus.
func (overlay *Window) InstallShortcuts(keyboard *command.Keyboard) {
	for _, binding := range keyboard.Bindings() {
		chord := binding.Chord
		overlay.window.Canvas().AddShortcut(shortcutFor(chord), func(fyne.Shortcut) {
			if !keyboard.Dispatch(chord) {
				overlay.logger.Debug("Local shortcut dropped", slog.String("chord", chord.String()))
			}
		})
	}
}

// Bounds returns the native window rectangle in screen pixels.
func (overlay *Window) Bounds() (model.Rect, error) {
	return overlay.control.Bounds(overlay.nativeHandle())
}

// Move places the window's top-left corner at point.
func (overlay *Window) Move(point model.Point) error {
	return overlay.control.Move(overlay.nativeHandle(), point)
}

// RestorePosition moves the window to the persisted position.
func (overlay *Window) RestorePosition(settings model.Settings) {
	point := model.Point{X: int(settings.WindowLeft), Y: int(settings.WindowTop)}
	if err := overlay.Move(point); err != nil {
		overlay.logger.Debug("Failed to restore position", slog.String("error", err.Error()))
	}
}

// Position returns the current top-left corner.
func (overlay *Window) Position() (model.Point, bool) {
	bounds, err := overlay.Bounds()
	if err != nil {
		return model.Point{}, false
	}
	return model.Point{X: bounds.X, Y: bounds.Y}, true
}

func (overlay *Window) nativeHandle() platform.WindowHandle {
	if overlay.handle == 0 {
		overlay.handle = nativeHandle(overlay.window)
	}
	return overlay.handle
}

// applyOpacity uses the native layered alpha when available and otherwise
// falls back to a translucent background.
func (overlay *Window) applyOpacity() {
	alpha := opacityAlpha(overlay.config.Opacity)
	handle := overlay.nativeHandle()
	if handle != 0 {
		if err := overlay.control.SetOpacity(handle, overlay.config.Opacity); err == nil {
			alpha = 255
		} else {
			overlay.logger.Debug("Failed to set native opacity", slog.String("error", err.Error()))
		}
	}
	overlay.background.FillColor = color.NRGBA{A: alpha}
	canvas.Refresh(overlay.background)
}

func (overlay *Window) resize() {
	minSize := overlay.window.Content().MinSize()
	width := overlayWidth
	if minSize.Width > width {
		width = minSize.Width
	}
	overlay.window.Resize(fyne.NewSize(width, minSize.Height))
}

func newText(text string, fill color.Color, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, fill)
	label.Alignment = fyne.TextAlignLeading
	label.TextStyle = fyne.TextStyle{Bold: bold}
	label.TextSize = size
	return label
}

func shortcutFor(chord model.Chord) *desktop.CustomShortcut {
	var modifier fyne.KeyModifier
	if chord.Modifiers&model.ModCtrl != 0 {
		modifier |= fyne.KeyModifierControl
	}
	if chord.Modifiers&model.ModAlt != 0 {
		modifier |= fyne.KeyModifierAlt
	}
	if chord.Modifiers&model.ModShift != 0 {
		modifier |= fyne.KeyModifierShift
	}
	if chord.Modifiers&model.ModSuper != 0 {
		modifier |= fyne.KeyModifierSuper
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(string(rune(chord.Key))), Modifier: modifier}
}

func opacityAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}

// hexColor parses "#RRGGBB". Malformed input yields opaque gray.
func hexColor(value string) color.NRGBA {
	var r, g, b uint8
	if len(value) != 7 || value[0] != '#' {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	if _, err := fmt.Sscanf(value[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// stackLayout places its objects top to bottom with a small gap, each at its
// minimum height across the available width.
type stackLayout struct{}

const (
	stackPadding = float32(10)
	stackGap     = float32(4)
)

func (layout *stackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	availableWidth := size.Width - stackPadding*2
	if availableWidth < 0 {
		availableWidth = 0
	}
	y := stackPadding
	for _, object := range objects {
		height := object.MinSize().Height
		object.Move(fyne.NewPos(stackPadding, y))
		object.Resize(fyne.NewSize(availableWidth, height))
		y += height + stackGap
	}
}

func (layout *stackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		objectSize := object.MinSize()
		if objectSize.Width > width {
			width = objectSize.Width
		}
		height += objectSize.Height + stackGap
	}
	if len(objects) > 0 {
		height -= stackGap
	}
	return fyne.NewSize(width+stackPadding*2, height+stackPadding*2)
}
