package state

// Normalize turns the two corners of a drag into a rectangle anchored at
// its top-left corner. Negative coordinates are clamped to 0 and
// fractional pixels are truncated.
func Normalize(start, end Point) Rect {
	x1, y1 := clampNonNegative(start.X), clampNonNegative(start.Y)
	x2, y2 := clampNonNegative(end.X), clampNonNegative(end.Y)

	minX, maxX := x1, x2
	if x2 < x1 {
		minX, maxX = x2, x1
	}
	minY, maxY := y1, y2
	if y2 < y1 {
		minY, maxY = y2, y1
	}

	return Rect{
		X: int(minX),
		Y: int(minY),
		W: int(maxX - minX),
		H: int(maxY - minY),
	}
}

// ClampPoint keeps p inside a width x height surface.
func ClampPoint(p Point, width, height float32) Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X > width {
		p.X = width
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > height {
		p.Y = height
	}
	return p
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= float32(r.X) && p.X <= float32(r.X+r.W) &&
		p.Y >= float32(r.Y) && p.Y <= float32(r.Y+r.H)
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{
		X: float32(r.X) + float32(r.W)/2,
		Y: float32(r.Y) + float32(r.H)/2,
	}
}

func clampNonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
