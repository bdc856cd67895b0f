package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShapes(n int) []Shape {
	shapes := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		shapes = append(shapes, Shape{
			X: i, Y: i * 2, W: 10 + i, H: 5 + i,
			Name:    fmt.Sprintf("box-%d", i),
			Command: fmt.Sprintf("echo %d", i),
		})
	}
	return shapes
}

func TestNewBoard_DefaultMax(t *testing.T) {
	assert.Equal(t, DefaultMaxShapes, NewBoard(0).Max())
	assert.Equal(t, 7, NewBoard(7).Max())
}

func TestBoard_AddCapsAtMax(t *testing.T) {
	b := NewBoard(DefaultMaxShapes)
	for i, s := range sampleShapes(60) {
		err := b.Add(s)
		if i < DefaultMaxShapes {
			require.NoError(t, err)
		} else {
			assert.ErrorIs(t, err, ErrBoardFull)
		}
	}

	assert.Equal(t, DefaultMaxShapes, b.Len())
	assert.True(t, b.Full())
	assert.Equal(t, sampleShapes(DefaultMaxShapes), b.Shapes())
}

func TestBoard_AddRejectsNegativeGeometry(t *testing.T) {
	b := NewBoard(3)
	err := b.Add(Shape{X: -1, Name: "bad"})
	require.Error(t, err)
	assert.Zero(t, b.Len())
}

func TestBoard_UndoRemovesLast(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			original := sampleShapes(n)
			b := NewBoard(10)
			require.NoError(t, b.Replace(original))

			removed, err := b.Undo()
			require.NoError(t, err)
			assert.Equal(t, original[n-1], removed)
			assert.Equal(t, original[:n-1], b.Shapes())
		})
	}
}

func TestBoard_UndoEmpty(t *testing.T) {
	b := NewBoard(10)
	rev := b.Revision()

	_, err := b.Undo()
	assert.ErrorIs(t, err, ErrNothingToErase)
	assert.Equal(t, rev, b.Revision(), "failed undo must not mutate")
}

func TestBoard_ClearStartsNewSession(t *testing.T) {
	b := NewBoard(10)
	require.NoError(t, b.Replace(sampleShapes(3)))
	session := b.Session()

	b.Clear()
	assert.Zero(t, b.Len())
	assert.NotEqual(t, session, b.Session())
}

func TestBoard_ReplaceKeepsPriorListOnError(t *testing.T) {
	b := NewBoard(3)
	require.NoError(t, b.Replace(sampleShapes(2)))
	before := b.Shapes()

	err := b.Replace(sampleShapes(4))
	assert.ErrorIs(t, err, ErrTooManyShapes)
	assert.Equal(t, before, b.Shapes())

	bad := sampleShapes(2)
	bad[1].H = -5
	require.Error(t, b.Replace(bad))
	assert.Equal(t, before, b.Shapes())
}

func TestBoard_ShapesIsACopy(t *testing.T) {
	b := NewBoard(3)
	require.NoError(t, b.Add(Shape{Name: "a", W: 1, H: 1}))

	got := b.Shapes()
	got[0].Name = "changed"
	assert.Equal(t, "a", b.Shapes()[0].Name)
}

func TestBoard_ShapeAtReturnsTopmost(t *testing.T) {
	b := NewBoard(5)
	require.NoError(t, b.Add(Shape{X: 0, Y: 0, W: 100, H: 100, Name: "under"}))
	require.NoError(t, b.Add(Shape{X: 40, Y: 40, W: 20, H: 20, Name: "over"}))

	s, ok := b.ShapeAt(Point{50, 50})
	require.True(t, ok)
	assert.Equal(t, "over", s.Name)

	s, ok = b.ShapeAt(Point{5, 5})
	require.True(t, ok)
	assert.Equal(t, "under", s.Name)

	_, ok = b.ShapeAt(Point{200, 200})
	assert.False(t, ok)
}

func TestBoard_OnChange(t *testing.T) {
	b := NewBoard(5)
	calls := 0
	b.OnChange = func() { calls++ }

	require.NoError(t, b.Add(Shape{W: 1, H: 1}))
	_, err := b.Undo()
	require.NoError(t, err)
	b.Clear()
	require.NoError(t, b.Replace(sampleShapes(1)))

	assert.Equal(t, 4, calls)
	assert.Equal(t, uint64(4), b.Revision())
}

func TestBoard_SetMax(t *testing.T) {
	b := NewBoard(10)
	require.NoError(t, b.Replace(sampleShapes(3)))
	rev := b.Revision()

	assert.ErrorIs(t, b.SetMax(2), ErrTooManyShapes)
	assert.Equal(t, 10, b.Max())

	require.NoError(t, b.SetMax(3))
	assert.True(t, b.Full())
	assert.ErrorIs(t, b.Add(Shape{W: 1, H: 1}), ErrBoardFull)

	require.NoError(t, b.SetMax(0))
	assert.Equal(t, DefaultMaxShapes, b.Max())
	assert.Equal(t, rev, b.Revision(), "capacity changes do not touch the list")
}
