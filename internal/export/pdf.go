package export

import (
	"fmt"
	"io"

	"VisualShell/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin    = 10.0
	drawingHeight = 140.0
	labelHeight   = 5.0
)

// WritePDF draws the board on one landscape A4 page. The canvas is scaled
// to fit, each shape is outlined with its name centered, and shapes that
// carry a command are listed under the drawing.
func WritePDF(w io.Writer, shapes []state.Shape, canvasWidth, canvasHeight int) error {
	if len(shapes) == 0 {
		return ErrNothingToSave
	}
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", canvasWidth, canvasHeight)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.AddPage()
	p.SetFont("Helvetica", "", 9)
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.3)

	pageW, _ := p.GetPageSize()
	areaW := pageW - 2*pageMargin
	scale := areaW / float64(canvasWidth)
	if s := drawingHeight / float64(canvasHeight); s < scale {
		scale = s
	}

	// Canvas frame.
	p.SetDrawColor(160, 160, 160)
	p.Rect(pageMargin, pageMargin, float64(canvasWidth)*scale, float64(canvasHeight)*scale, "D")
	p.SetDrawColor(0, 0, 0)

	for _, s := range shapes {
		x := pageMargin + float64(s.X)*scale
		y := pageMargin + float64(s.Y)*scale
		rw := float64(s.W) * scale
		rh := float64(s.H) * scale
		p.Rect(x, y, rw, rh, "D")
		if s.Name != "" {
			p.SetXY(x, y+rh/2-labelHeight/2)
			p.CellFormat(rw, labelHeight, tr(s.Name), "", 0, "C", false, 0, "")
		}
	}

	p.SetXY(pageMargin, pageMargin+float64(canvasHeight)*scale+8)
	for i, s := range shapes {
		if s.Command == "" {
			continue
		}
		line := fmt.Sprintf("%d. %s: %s", i+1, s.Name, s.Command)
		p.CellFormat(areaW, labelHeight, tr(line), "", 1, "L", false, 0, "")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
