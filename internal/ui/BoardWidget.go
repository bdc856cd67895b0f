package ui

import (
	"fmt"
	"image/color"
	"io"

	"VisualShell/internal/export"
	"VisualShell/internal/logger"
	"VisualShell/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const component = "board"

// BoardWidget is the drawing surface. It turns pointer gestures into
// rectangles and paints the shapes held by its state.Board.
type BoardWidget struct {
	widget.BaseWidget
	board     *state.Board
	tracker   state.Tracker
	style     Style
	styleRev  uint64
	size      fyne.Size
	log       *logger.Logger
	statusBar *widget.Label

	// OnRectDrawn receives each finished drag. The shape is added only
	// once the receiver calls AddShape.
	OnRectDrawn func(r state.Rect)
	// OnShapeSecondaryTapped fires on a right click over a shape.
	OnShapeSecondaryTapped func(s state.Shape)
	// OnCountChanged fires after every board mutation.
	OnCountChanged func(count, max int)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.SecondaryTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board, size fyne.Size, log *logger.Logger) *BoardWidget {
	if log == nil {
		log = logger.Nop()
	}
	b := &BoardWidget{
		board:     board,
		style:     DefaultStyle(),
		size:      size,
		log:       log,
		statusBar: widget.NewLabel("Ready"),
	}
	board.OnChange = func() {
		if b.OnCountChanged != nil {
			b.OnCountChanged(board.Len(), board.Max())
		}
		b.Refresh()
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Board() *state.Board { return b.board }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// SetOutlineColor changes the colour of outlines and labels.
func (b *BoardWidget) SetOutlineColor(c color.Color) {
	b.style.Outline = c
	b.style.Label = c
	b.styleRev++
	b.Refresh()
}

// SetCanvasSize resizes the drawing surface. Shapes outside the new
// bounds stay in the list.
func (b *BoardWidget) SetCanvasSize(size fyne.Size) {
	b.size = size
	b.Refresh()
}

// AddShape commits a shape drawn on the surface.
func (b *BoardWidget) AddShape(r state.Rect, name, command string) error {
	s := state.NewShape(r, name, command)
	if err := b.board.Add(s); err != nil {
		b.log.Warning(component, "shape rejected", map[string]interface{}{
			"session": b.board.Session(),
			"shape":   s.String(),
			"error":   err.Error(),
		})
		return err
	}
	b.log.Info(component, "shape added", map[string]interface{}{
		"session": b.board.Session(),
		"shape":   s.String(),
		"count":   b.board.Len(),
	})
	b.SetStatus(fmt.Sprintf("Added %q", name))
	return nil
}

// Erase removes the most recent shape.
func (b *BoardWidget) Erase() error {
	s, err := b.board.Undo()
	if err != nil {
		return err
	}
	b.log.Info(component, "shape erased", map[string]interface{}{
		"session": b.board.Session(),
		"shape":   s.String(),
		"count":   b.board.Len(),
	})
	b.SetStatus(fmt.Sprintf("Erased %q", s.Name))
	return nil
}

// NewDrawing empties the board and the surface.
func (b *BoardWidget) NewDrawing() {
	b.tracker.Cancel()
	b.board.Clear()
	b.log.Info(component, "new drawing", map[string]interface{}{"session": b.board.Session()})
	b.SetStatus("New drawing")
}

// SaveTo writes the board as CSV.
func (b *BoardWidget) SaveTo(w io.Writer) error {
	shapes := b.board.Shapes()
	if err := export.WriteCSV(w, shapes); err != nil {
		return err
	}
	b.log.Info(component, "board saved", map[string]interface{}{
		"session": b.board.Session(),
		"count":   len(shapes),
	})
	b.SetStatus(fmt.Sprintf("Saved %d shapes", len(shapes)))
	return nil
}

// LoadFrom replaces the board with the shapes read from r. The file is
// parsed completely first; on any error the current drawing is kept.
func (b *BoardWidget) LoadFrom(r io.Reader) (int, error) {
	shapes, err := export.ReadCSV(r)
	if err != nil {
		b.log.Error(component, err, map[string]interface{}{
			"session": b.board.Session(),
			"stage":   "parse",
		})
		return 0, err
	}
	b.tracker.Cancel()
	if err := b.board.Replace(shapes); err != nil {
		b.log.Error(component, err, map[string]interface{}{
			"session": b.board.Session(),
			"stage":   "replace",
		})
		return 0, err
	}
	b.log.Info(component, "board loaded", map[string]interface{}{
		"session": b.board.Session(),
		"count":   len(shapes),
	})
	b.SetStatus(fmt.Sprintf("Loaded %d shapes", len(shapes)))
	return len(shapes), nil
}

// ExportPDF renders the board as a one-page PDF.
func (b *BoardWidget) ExportPDF(w io.Writer) error {
	shapes := b.board.Shapes()
	if err := export.WritePDF(w, shapes, int(b.size.Width), int(b.size.Height)); err != nil {
		return err
	}
	b.log.Info(component, "board exported", map[string]interface{}{
		"session": b.board.Session(),
		"count":   len(shapes),
	})
	b.SetStatus(fmt.Sprintf("Exported %d shapes", len(shapes)))
	return nil
}

func (b *BoardWidget) pointerToBoard(pos fyne.Position) state.Point {
	return state.ClampPoint(state.Point{X: pos.X, Y: pos.Y}, b.size.Width, b.size.Height)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if !b.tracker.Begin(b.pointerToBoard(e.Position), b.board.Len(), b.board.Max()) {
		b.log.Warning(component, "shape limit reached", map[string]interface{}{
			"session": b.board.Session(),
			"max":     b.board.Max(),
		})
		b.SetStatus(fmt.Sprintf("Shape limit reached (%d)", b.board.Max()))
		return
	}
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.tracker.Active() {
		return
	}
	b.tracker.Move(b.pointerToBoard(e.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.finishGesture()
}

func (b *BoardWidget) DragEnd() {
	b.finishGesture()
}

// finishGesture runs on whichever of MouseUp and DragEnd arrives first.
func (b *BoardWidget) finishGesture() {
	r, ok := b.tracker.End()
	if !ok {
		return
	}
	b.Refresh()
	if b.OnRectDrawn != nil {
		b.OnRectDrawn(r)
	}
}

func (b *BoardWidget) TappedSecondary(e *fyne.PointEvent) {
	s, ok := b.board.ShapeAt(b.pointerToBoard(e.Position))
	if !ok || b.OnShapeSecondaryTapped == nil {
		return
	}
	b.OnShapeSecondaryTapped(s)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.style.Background)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	shapes     []fyne.CanvasObject
	objects    []fyne.CanvasObject

	built    bool
	boardRev uint64
	styleRev uint64
}

// rebuild repaints everything from the board: background, committed
// shapes, then the transient shape if a drag is in progress. Shape objects
// are only recreated when the board or the style changed.
func (r *boardWidgetRenderer) rebuild() {
	b := r.board
	r.background.FillColor = b.style.Background

	if !r.built || r.boardRev != b.board.Revision() || r.styleRev != b.styleRev {
		r.shapes = RenderShapes(b.board.Shapes(), b.style)
		r.boardRev = b.board.Revision()
		r.styleRev = b.styleRev
		r.built = true
	}

	objects := make([]fyne.CanvasObject, 0, len(r.shapes)+2)
	objects = append(objects, r.background)
	objects = append(objects, r.shapes...)
	if preview, ok := b.tracker.Transient(); ok {
		objects = append(objects, newOutline(preview, b.style.Preview, b.style.StrokeWidth))
	}
	r.objects = objects
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardWidgetRenderer) Destroy() {}
