package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyMaxShapes      = "max_shapes"
	KeyCanvasWidth    = "canvas_width"
	KeyCanvasHeight   = "canvas_height"
	KeyLastDirectory  = "last_directory"
	KeyCommandTimeout = "command_timeout_seconds"
)

// Default values
const (
	DefaultMaxShapes      = 50
	DefaultCanvasWidth    = 320
	DefaultCanvasHeight   = 240
	DefaultCommandTimeout = 30
)

const (
	maxShapesLimit  = 500
	maxTimeoutLimit = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxShapes returns how many shapes a board may hold, clamped to 1..500
// so a hand-edited preferences file cannot lift the limit
func (s *Settings) GetMaxShapes() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyMaxShapes, DefaultMaxShapes), 1, maxShapesLimit)
}

// SetMaxShapes sets the board capacity, clamped to 1..500
func (s *Settings) SetMaxShapes(n int) {
	s.app.Preferences().SetInt(KeyMaxShapes, clamp(n, 1, maxShapesLimit))
}

// GetCanvasSize returns the drawing surface size in pixels
func (s *Settings) GetCanvasSize() fyne.Size {
	w := s.app.Preferences().IntWithFallback(KeyCanvasWidth, DefaultCanvasWidth)
	h := s.app.Preferences().IntWithFallback(KeyCanvasHeight, DefaultCanvasHeight)
	if w <= 0 {
		w = DefaultCanvasWidth
	}
	if h <= 0 {
		h = DefaultCanvasHeight
	}
	return fyne.NewSize(float32(w), float32(h))
}

// SetCanvasSize sets the drawing surface size
func (s *Settings) SetCanvasSize(width, height int) {
	s.app.Preferences().SetInt(KeyCanvasWidth, clamp(width, 1, 10000))
	s.app.Preferences().SetInt(KeyCanvasHeight, clamp(height, 1, 10000))
}

// GetLastDirectory returns the directory used by the last file dialog
func (s *Settings) GetLastDirectory() string {
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers the directory of the last file dialog
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetCommandTimeout returns how long a shape command may run
func (s *Settings) GetCommandTimeout() time.Duration {
	secs := s.app.Preferences().IntWithFallback(KeyCommandTimeout, DefaultCommandTimeout)
	if secs <= 0 {
		secs = DefaultCommandTimeout
	}
	return time.Duration(secs) * time.Second
}

// SetCommandTimeout sets the command timeout, clamped to 1..600 seconds
func (s *Settings) SetCommandTimeout(d time.Duration) {
	s.app.Preferences().SetInt(KeyCommandTimeout, clamp(int(d/time.Second), 1, maxTimeoutLimit))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
