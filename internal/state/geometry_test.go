package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AnyDragDirection(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       Rect
	}{
		{"down-right", Point{10, 10}, Point{50, 50}, Rect{10, 10, 40, 40}},
		{"up-left", Point{50, 50}, Point{10, 10}, Rect{10, 10, 40, 40}},
		{"up-right", Point{10, 50}, Point{50, 10}, Rect{10, 10, 40, 40}},
		{"down-left", Point{50, 10}, Point{10, 50}, Rect{10, 10, 40, 40}},
		{"click", Point{7, 9}, Point{7, 9}, Rect{7, 9, 0, 0}},
		{"fractional", Point{1.9, 2.2}, Point{11.7, 3.9}, Rect{1, 2, 9, 1}},
		{"off surface", Point{-20, 5}, Point{30, -4}, Rect{0, 0, 30, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.start, tt.end)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.W, 0)
			assert.GreaterOrEqual(t, got.H, 0)
		})
	}
}

func TestClampPoint(t *testing.T) {
	assert.Equal(t, Point{0, 240}, ClampPoint(Point{-3, 900}, 320, 240))
	assert.Equal(t, Point{12, 13}, ClampPoint(Point{12, 13}, 320, 240))
	assert.Equal(t, Point{320, 0}, ClampPoint(Point{400, -1}, 320, 240))
}

func TestRect_ContainsAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.True(t, r.Contains(Point{10, 20}))
	assert.True(t, r.Contains(Point{40, 60}))
	assert.False(t, r.Contains(Point{41, 30}))
	assert.False(t, r.Contains(Point{15, 19}))
	assert.Equal(t, Point{25, 40}, r.Center())
}
