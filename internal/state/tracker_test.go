package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Gesture(t *testing.T) {
	var tr Tracker

	require.True(t, tr.Begin(Point{50, 50}, 0, DefaultMaxShapes))
	tr.Move(Point{30, 45})
	preview, ok := tr.Transient()
	require.True(t, ok)
	assert.Equal(t, Rect{30, 45, 20, 5}, preview)

	tr.Move(Point{10, 10})
	r, ok := tr.End()
	require.True(t, ok)
	assert.Equal(t, Rect{10, 10, 40, 40}, r)

	assert.False(t, tr.Active())
	_, ok = tr.End()
	assert.False(t, ok, "a second release must not produce another rectangle")
}

func TestTracker_IgnoresOverflow(t *testing.T) {
	var tr Tracker

	assert.False(t, tr.Begin(Point{1, 1}, 50, 50))
	tr.Move(Point{20, 20})
	_, ok := tr.Transient()
	assert.False(t, ok)
	_, ok = tr.End()
	assert.False(t, ok)
}

func TestTracker_Cancel(t *testing.T) {
	var tr Tracker
	require.True(t, tr.Begin(Point{1, 1}, 0, 1))
	tr.Cancel()
	_, ok := tr.End()
	assert.False(t, ok)
}
