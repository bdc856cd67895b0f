package state

// Tracker follows one drag gesture. It holds the transient shape until the
// pointer is released.
type Tracker struct {
	active bool
	start  Point
	end    Point
}

// Begin starts a transient shape at p when count is below max. When the
// board is already full it returns false and stays idle.
func (t *Tracker) Begin(p Point, count, max int) bool {
	if count >= max {
		t.active = false
		return false
	}
	t.active = true
	t.start = p
	t.end = p
	return true
}

// Move updates the opposite corner of the transient shape.
func (t *Tracker) Move(p Point) {
	if !t.active {
		return
	}
	t.end = p
}

func (t *Tracker) Active() bool { return t.active }

// Transient returns the live preview rectangle.
func (t *Tracker) Transient() (Rect, bool) {
	if !t.active {
		return Rect{}, false
	}
	return Normalize(t.start, t.end), true
}

// End finalizes the gesture and resets the tracker.
func (t *Tracker) End() (Rect, bool) {
	if !t.active {
		return Rect{}, false
	}
	r := Normalize(t.start, t.end)
	t.active = false
	t.start, t.end = Point{}, Point{}
	return r, true
}

// Cancel drops the transient shape without producing a rectangle.
func (t *Tracker) Cancel() {
	t.active = false
}
