package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"VisualShell/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// SettingsDialog edits the persisted settings and applies them to the
// open board.
type SettingsDialog struct {
	settings *config.Settings
	board    *BoardWidget
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// OnApplied runs after saved settings have been applied to the board.
	OnApplied func()

	maxShapesEntry *widget.Entry
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	timeoutEntry   *widget.Entry
}

func NewSettingsDialog(settings *config.Settings, board *BoardWidget, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		board:    board,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the dialog filled with the current settings.
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.maxShapesEntry = widget.NewEntry()
	sd.maxShapesEntry.SetPlaceHolder("1-500")

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder("width")
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder("height")
	sizeRow := container.NewGridWithColumns(2, sd.widthEntry, sd.heightEntry)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-600")

	form := container.NewVBox(
		widget.NewLabel("Board"),
		widget.NewSeparator(),

		widget.NewLabel("Max Shapes:"),
		sd.maxShapesEntry,

		widget.NewLabel("Canvas Size (px):"),
		sizeRow,

		widget.NewSeparator(),
		widget.NewLabel("Commands"),
		widget.NewSeparator(),

		widget.NewLabel("Timeout (seconds):"),
		sd.timeoutEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 360))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	size := sd.settings.GetCanvasSize()
	sd.maxShapesEntry.SetText(strconv.Itoa(sd.settings.GetMaxShapes()))
	sd.widthEntry.SetText(strconv.Itoa(int(size.Width)))
	sd.heightEntry.SetText(strconv.Itoa(int(size.Height)))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetCommandTimeout() / time.Second)))
}

// onSave stores every field that parses and applies it. Blank or
// non-numeric fields keep their current value. A shape limit below the
// number of shapes on the board is refused and nothing is saved.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if n, ok := entryInt(sd.maxShapesEntry); ok {
		prev := sd.settings.GetMaxShapes()
		sd.settings.SetMaxShapes(n)
		if err := sd.board.Board().SetMax(sd.settings.GetMaxShapes()); err != nil {
			sd.settings.SetMaxShapes(prev)
			dialog.ShowError(fmt.Errorf("settings not saved: %w", err), sd.window)
			return
		}
	}

	w, okW := entryInt(sd.widthEntry)
	h, okH := entryInt(sd.heightEntry)
	if okW && okH {
		sd.settings.SetCanvasSize(w, h)
		sd.board.SetCanvasSize(sd.settings.GetCanvasSize())
	}

	if secs, ok := entryInt(sd.timeoutEntry); ok {
		sd.settings.SetCommandTimeout(time.Duration(secs) * time.Second)
	}

	sd.board.log.Info("settings", "settings saved", map[string]interface{}{
		"session": sd.board.Board().Session(),
		"max":     sd.board.Board().Max(),
		"canvas":  fmt.Sprintf("%gx%g", sd.board.size.Width, sd.board.size.Height),
		"timeout": sd.settings.GetCommandTimeout().String(),
	})
	if sd.OnApplied != nil {
		sd.OnApplied()
	}

	dialog.ShowInformation("Settings", "Settings saved.", sd.window)
}

func entryInt(e *widget.Entry) (int, bool) {
	text := strings.TrimSpace(e.Text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
