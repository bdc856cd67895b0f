package ui

import (
	"image/color"
	"testing"

	"VisualShell/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderFixture = []state.Shape{
	{X: 10, Y: 20, W: 100, H: 40, Name: "editor", Command: "vim"},
	{X: 150, Y: 100, W: 60, H: 80, Name: "logs"},
}

func TestRenderShapes_OutlineAndCenteredLabel(t *testing.T) {
	test.NewApp()
	objects := RenderShapes(renderFixture, DefaultStyle())
	require.Len(t, objects, 4)

	rect, ok := objects[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(10, 20), rect.Position())
	assert.Equal(t, fyne.NewSize(100, 40), rect.Size())
	assert.Equal(t, color.Transparent, rect.FillColor)
	assert.Equal(t, color.White, rect.StrokeColor)

	text, ok := objects[1].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "editor", text.Text)
	center := fyne.NewPos(text.Position().X+text.Size().Width/2, text.Position().Y+text.Size().Height/2)
	assert.InDelta(t, 60, center.X, 0.01)
	assert.InDelta(t, 40, center.Y, 0.01)
}

func TestRenderShapes_Idempotent(t *testing.T) {
	test.NewApp()
	first := RenderShapes(renderFixture, DefaultStyle())
	second := RenderShapes(renderFixture, DefaultStyle())

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Position(), second[i].Position())
		assert.Equal(t, first[i].Size(), second[i].Size())
	}
	assert.Equal(t, first[1].(*canvas.Text).Text, second[1].(*canvas.Text).Text)
	assert.Equal(t, first[2].(*canvas.Rectangle).StrokeColor, second[2].(*canvas.Rectangle).StrokeColor)
}

func TestRenderShapes_Empty(t *testing.T) {
	assert.Empty(t, RenderShapes(nil, DefaultStyle()))
}
