package game

// --- Geometry helpers ---

// clamp restricts v to [lo, hi]. lo <= hi is a caller invariant.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// circleRectOverlap reports whether a circle at (cx, cy) with radius r
// touches the axis-aligned rectangle [rx, rx+rw] x [ry, ry+rh]: clamp the
// centre to the rectangle per axis for the closest point, then compare the
// squared distance against r squared.
func circleRectOverlap(cx, cy, r, rx, ry, rw, rh float64) bool {
	nx := clamp(cx, rx, rx+rw)
	ny := clamp(cy, ry, ry+rh)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// pointInCircle reports whether the point (px, py) lies inside or on the
// circle at (cx, cy) with radius r.
func pointInCircle(px, py, cx, cy, r float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}

// circlesOverlap reports whether two circles touch: squared centre distance
// against combined radius squared.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}
