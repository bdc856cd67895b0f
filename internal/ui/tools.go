package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Actions are the toolbar commands.
type Actions struct {
	OnNew      func()
	OnErase    func()
	OnSave     func()
	OnLoad     func()
	OnExport   func()
	OnSettings func()
}

// Toolbar holds the action buttons and the shape counter.
type Toolbar struct {
	content fyne.CanvasObject
	counter *widget.Label
}

func NewToolbar(board *BoardWidget, actions Actions) *Toolbar {
	buttons := container.NewHBox(
		widget.NewButtonWithIcon("New", theme.DocumentCreateIcon(), actions.OnNew),
		widget.NewButtonWithIcon("Erase", theme.ContentUndoIcon(), actions.OnErase),
		widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), actions.OnSave),
		widget.NewButtonWithIcon("Load", theme.FolderOpenIcon(), actions.OnLoad),
		widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), actions.OnExport),
		widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), actions.OnSettings),
	)

	// --- Outline Palette ---
	palette := []color.Color{
		color.White,
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
		color.NRGBA{R: 80, G: 160, B: 255, A: 255},
		color.NRGBA{R: 255, G: 255, A: 255},
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, board.SetOutlineColor))
	}

	t := &Toolbar{counter: widget.NewLabel("")}
	t.SetCount(board.Board().Len(), board.Board().Max())

	// --- Assemble everything ---
	t.content = container.NewHBox(
		buttons,
		widget.NewSeparator(),
		widget.NewLabel("Outline:"),
		colorBox,
		layout.NewSpacer(),
		t.counter,
	)
	return t
}

func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

func (t *Toolbar) SetCount(count, max int) {
	t.counter.SetText(fmt.Sprintf("%d/%d", count, max))
}
