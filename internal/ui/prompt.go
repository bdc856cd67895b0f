package ui

import (
	"errors"
	"fmt"
	"strings"

	"VisualShell/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var errNameRequired = errors.New("name is required")

func validateShapeName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameRequired
	}
	return nil
}

// shapeFormValues tidies the label. The command is kept exactly as typed.
func shapeFormValues(name, command string) (string, string) {
	return strings.TrimSpace(name), command
}

// newShapeForm asks for the name and optional command of a freshly drawn
// rectangle. The dialog is modal but does not block the event loop;
// submit runs only when the user confirms.
func newShapeForm(r state.Rect, win fyne.Window, submit func(name, command string)) dialog.Dialog {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Label shown on the canvas")
	nameEntry.Validator = validateShapeName

	commandEntry := widget.NewEntry()
	commandEntry.SetPlaceHolder("Shell command (optional)")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Command", commandEntry),
	}

	title := fmt.Sprintf("New shape %dx%d at (%d, %d)", r.W, r.H, r.X, r.Y)
	d := dialog.NewForm(title, "Add", "Discard", items, func(ok bool) {
		if !ok {
			return
		}
		submit(shapeFormValues(nameEntry.Text, commandEntry.Text))
	}, win)
	d.Resize(fyne.NewSize(360, d.MinSize().Height))
	return d
}
