package state

import (
	"errors"
	"fmt"
)

// DefaultMaxShapes is the board capacity when none is configured.
const DefaultMaxShapes = 50

var (
	ErrBoardFull      = errors.New("board is full")
	ErrNothingToErase = errors.New("nothing to erase")
	ErrTooManyShapes  = errors.New("too many shapes")
)

// Board is the ordered list of shapes drawn by the user. It is the single
// source of truth for rendering and serialization. Board is not safe for
// concurrent use; all calls happen on the UI goroutine.
type Board struct {
	shapes  []Shape
	max     int
	session string
	clock   revisionClock

	// OnChange runs after every mutation.
	OnChange func()
}

func NewBoard(max int) *Board {
	if max <= 0 {
		max = DefaultMaxShapes
	}
	return &Board{
		shapes:  make([]Shape, 0, max),
		max:     max,
		session: newSessionID(),
	}
}

func (b *Board) Len() int { return len(b.shapes) }
func (b *Board) Max() int { return b.max }
func (b *Board) Full() bool { return len(b.shapes) >= b.max }

// Session identifies the current drawing. It changes on Clear and Replace.
func (b *Board) Session() string { return b.session }

// Revision increases on every mutation.
func (b *Board) Revision() uint64 { return b.clock.current() }

// SetMax changes the board capacity. A limit below the current number of
// shapes is rejected with ErrTooManyShapes.
func (b *Board) SetMax(max int) error {
	if max <= 0 {
		max = DefaultMaxShapes
	}
	if max < len(b.shapes) {
		return fmt.Errorf("%w: board holds %d shapes, limit %d is too low", ErrTooManyShapes, len(b.shapes), max)
	}
	b.max = max
	return nil
}

// Add appends s. At capacity it returns ErrBoardFull and changes nothing.
func (b *Board) Add(s Shape) error {
	if b.Full() {
		return ErrBoardFull
	}
	if err := s.Valid(); err != nil {
		return err
	}
	b.shapes = append(b.shapes, s)
	b.changed()
	return nil
}

// Undo removes and returns the most recently added shape.
func (b *Board) Undo() (Shape, error) {
	if len(b.shapes) == 0 {
		return Shape{}, ErrNothingToErase
	}
	last := b.shapes[len(b.shapes)-1]
	b.shapes = b.shapes[:len(b.shapes)-1]
	b.changed()
	return last, nil
}

// Clear empties the board and starts a new session.
func (b *Board) Clear() {
	b.shapes = b.shapes[:0]
	b.session = newSessionID()
	b.changed()
}

// Replace swaps the whole list for shapes. On error the current list is
// left as it was.
func (b *Board) Replace(shapes []Shape) error {
	if len(shapes) > b.max {
		return fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyShapes, len(shapes), b.max)
	}
	for i, s := range shapes {
		if err := s.Valid(); err != nil {
			return fmt.Errorf("shape %d: %w", i+1, err)
		}
	}
	next := make([]Shape, len(shapes), b.max)
	copy(next, shapes)
	b.shapes = next
	b.session = newSessionID()
	b.changed()
	return nil
}

// Shapes returns a copy of the list in creation order.
func (b *Board) Shapes() []Shape {
	out := make([]Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

// ShapeAt returns the topmost shape under p. Later shapes are drawn over
// earlier ones, so the search runs backwards.
func (b *Board) ShapeAt(p Point) (Shape, bool) {
	for i := len(b.shapes) - 1; i >= 0; i-- {
		if b.shapes[i].Rect().Contains(p) {
			return b.shapes[i], true
		}
	}
	return Shape{}, false
}

func (b *Board) changed() {
	b.clock.tick()
	if b.OnChange != nil {
		b.OnChange()
	}
}
