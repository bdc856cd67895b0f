package ui

import (
	"image/color"

	"VisualShell/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Style holds the colours and sizes used to paint the board.
type Style struct {
	Background  color.Color
	Outline     color.Color
	Label       color.Color
	Preview     color.Color
	StrokeWidth float32
	TextSize    float32
}

// DefaultStyle draws white outlines and labels on black.
func DefaultStyle() Style {
	return Style{
		Background:  color.Black,
		Outline:     color.White,
		Label:       color.White,
		Preview:     color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		StrokeWidth: 1,
		TextSize:    11,
	}
}

// RenderShapes turns the shape list into canvas objects: an outlined
// rectangle and a centered label per shape, in list order. The result
// depends only on its arguments.
func RenderShapes(shapes []state.Shape, style Style) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(shapes)*2)
	for _, s := range shapes {
		objects = append(objects,
			newOutline(s.Rect(), style.Outline, style.StrokeWidth),
			newLabel(s, style),
		)
	}
	return objects
}

func newOutline(r state.Rect, stroke color.Color, width float32) *canvas.Rectangle {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = stroke
	rect.StrokeWidth = width
	rect.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	rect.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
	return rect
}

func newLabel(s state.Shape, style Style) *canvas.Text {
	text := canvas.NewText(s.Name, style.Label)
	text.TextSize = style.TextSize
	text.Alignment = fyne.TextAlignCenter

	size := text.MinSize()
	center := s.Rect().Center()
	text.Resize(size)
	text.Move(fyne.NewPos(center.X-size.Width/2, center.Y-size.Height/2))
	return text
}
