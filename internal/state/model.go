package state

import "fmt"

// Point is a pointer position on the canvas, in pixels.
type Point struct{ X, Y float32 }

// Rect is a normalized rectangle: top-left corner plus non-negative size.
type Rect struct {
	X, Y int
	W, H int
}

// Shape is one labeled rectangle on the board. Command is stored as typed
// and never interpreted by the board itself.
type Shape struct {
	X, Y    int
	W, H    int
	Name    string
	Command string
}

func NewShape(r Rect, name, command string) Shape {
	return Shape{X: r.X, Y: r.Y, W: r.W, H: r.H, Name: name, Command: command}
}

func (s Shape) Rect() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// Valid reports whether all geometry fields are non-negative.
func (s Shape) Valid() error {
	if s.X < 0 || s.Y < 0 || s.W < 0 || s.H < 0 {
		return fmt.Errorf("shape %q has negative geometry (%d,%d,%d,%d)", s.Name, s.X, s.Y, s.W, s.H)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%s@(%d,%d %dx%d)", s.Name, s.X, s.Y, s.W, s.H)
}
