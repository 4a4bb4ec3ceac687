package rectangle

import (
	"github.com/mikenye/geom2d/linesegment"
	"github.com/mikenye/geom2d/point"
	"github.com/mikenye/geom2d/types"
)

// DisjointWith reports whether r and other share no point, not even a
// touching edge or corner.
func (r Rectangle) DisjointWith(other Rectangle) bool {
	return r.topLeft.X() > other.bottomRight.X() ||
		r.bottomRight.X() < other.topLeft.X() ||
		r.bottomRight.Y() > other.topLeft.Y() ||
		r.topLeft.Y() < other.bottomRight.Y()
}

// IntersectsWith reports whether r and other share at least one point,
// including a touching edge or corner.
func (r Rectangle) IntersectsWith(other Rectangle) bool {
	return !r.DisjointWith(other)
}

// TouchesWith reports whether r and other meet only along an edge or at a
// corner, with no two-dimensional overlap.
func (r Rectangle) TouchesWith(other Rectangle) bool {
	return r.IntersectsWith(other) && !r.OverlapsWith(other)
}

// OverlapsWith reports whether r and other share a region with positive
// area, as opposed to merely touching along an edge or corner.
func (r Rectangle) OverlapsWith(other Rectangle) bool {
	xOverlap := min(r.bottomRight.X(), other.bottomRight.X()) - max(r.topLeft.X(), other.topLeft.X())
	yOverlap := min(r.topLeft.Y(), other.topLeft.Y()) - max(r.bottomRight.Y(), other.bottomRight.Y())
	return xOverlap > 0 && yOverlap > 0
}

// IsSubsetOf reports whether r lies entirely within or on the boundary of
// goal.
func (r Rectangle) IsSubsetOf(goal Rectangle) bool {
	return goal.topLeft.X() <= r.topLeft.X() &&
		r.bottomRight.X() <= goal.bottomRight.X() &&
		goal.bottomRight.Y() <= r.bottomRight.Y() &&
		r.topLeft.Y() <= goal.topLeft.Y()
}

// WithinOf reports whether r lies strictly in the interior of goal, with no
// point of r touching goal's boundary.
//
// It applies the strict interval pre-check withinOfBounds and then
// confirms with CoversPoint that every corner of r lies strictly inside
// goal. For two axis-aligned rectangles these tests together exclude any
// shared boundary point and any crossing of r's edges with goal's.
func (r Rectangle) WithinOf(goal Rectangle) bool {
	if !r.withinOfBounds(goal) {
		return false
	}
	for _, v := range r.corners() {
		if !goal.CoversPoint(v) {
			return false
		}
	}
	return true
}

// withinOfBounds is the cheap interval pre-check behind WithinOf: it
// rejects rectangles that cannot possibly be strictly inside goal without
// walking corners or edges.
func (r Rectangle) withinOfBounds(goal Rectangle) bool {
	return goal.topLeft.X() < r.topLeft.X() &&
		r.bottomRight.X() < goal.bottomRight.X() &&
		goal.bottomRight.Y() < r.bottomRight.Y() &&
		r.topLeft.Y() < goal.topLeft.Y()
}

// CoversPoint reports whether p lies strictly in the interior of r, not on
// its boundary.
func (r Rectangle) CoversPoint(p point.Point) bool {
	return p.X() > r.topLeft.X() &&
		p.X() < r.bottomRight.X() &&
		p.Y() < r.topLeft.Y() &&
		p.Y() > r.bottomRight.Y()
}

// corners returns the four corners of r in counter-clockwise order starting
// at the bottom-left.
func (r Rectangle) corners() [4]point.Point {
	return [4]point.Point{r.bottomLeft, r.bottomRight, r.topRight, r.topLeft}
}

// IntersectsWithSegment reports whether seg shares at least one point with
// r.
func (r Rectangle) IntersectsWithSegment(seg linesegment.LineSegment) bool {
	segBounds := segmentBounds(seg)
	if !r.IntersectsWith(segBounds) {
		return false
	}
	if segBounds.IsSubsetOf(r) {
		return true
	}
	for edge := range r.EdgesIter {
		if linesegment.SegmentsRelationship(edge, seg) != types.SegmentRelationshipNone {
			return true
		}
	}
	return false
}

// OverlapsWithSegment reports whether seg shares more than a single point
// with r: either seg runs along one of r's edges, or it crosses through r's
// interior.
func (r Rectangle) OverlapsWithSegment(seg linesegment.LineSegment) bool {
	segBounds := segmentBounds(seg)
	if !r.IntersectsWith(segBounds) {
		return false
	}
	if segBounds.IsSubsetOf(r) {
		return true
	}
	for edge := range r.EdgesIter {
		rel := linesegment.SegmentsRelationship(edge, seg)
		if rel != types.SegmentRelationshipNone && rel != types.SegmentRelationshipTouch {
			return true
		}
	}
	return false
}

// IntersectsWithPolygon reports whether r shares at least one point with
// the polygon described by border (its outer contour) and holes (the
// contours of its holes, which are excluded from the polygon's area).
func (r Rectangle) IntersectsWithPolygon(border []point.Point, holes [][]point.Point) bool {
	polyBounds := boundsOfPoints(border)
	if !r.IntersectsWith(polyBounds) {
		return false
	}
	if polyBounds.IsSubsetOf(r) {
		return true
	}
	for _, v := range border {
		if r.ContainsPoint(v) {
			return true
		}
	}
	if r.withinOfRegion(border) {
		coveredByHole := false
		for _, hole := range holes {
			if r.withinOfRegion(hole) {
				coveredByHole = true
				break
			}
		}
		if !coveredByHole {
			return true
		}
	}
	for _, v := range r.corners() {
		if pointInRing(v, border) {
			return true
		}
	}
	for _, edge := range contourSegments(border) {
		if r.IntersectsWithSegment(edge) {
			return true
		}
	}
	return false
}

// OverlapsWithPolygon reports whether r shares a region with positive area
// with the polygon described by border and holes.
func (r Rectangle) OverlapsWithPolygon(border []point.Point, holes [][]point.Point) bool {
	polyBounds := boundsOfPoints(border)
	if !r.IntersectsWith(polyBounds) {
		return false
	}
	if polyBounds.IsSubsetOf(r) {
		return true
	}
	for _, v := range border {
		if r.CoversPoint(v) {
			return true
		}
	}
	if r.withinOfRegion(border) {
		coveredByHole := false
		for _, hole := range holes {
			if r.withinOfRegion(hole) {
				coveredByHole = true
				break
			}
		}
		if !coveredByHole {
			return true
		}
	}
	for _, v := range r.corners() {
		if pointInRingStrict(v, border) {
			return true
		}
	}
	for _, edge := range contourSegments(border) {
		if r.OverlapsWithSegment(edge) {
			return true
		}
	}
	return false
}

// withinOfRegion reports whether r sits strictly inside the region bounded
// by ring, touching neither ring's vertices nor any of its edges.
func (r Rectangle) withinOfRegion(ring []point.Point) bool {
	if !r.WithinOf(boundsOfPoints(ring)) {
		return false
	}
	for _, v := range r.corners() {
		if !pointInRingStrict(v, ring) {
			return false
		}
	}
	for _, edge := range r.edgeSegments() {
		for _, ringEdge := range contourSegments(ring) {
			if linesegment.SegmentsRelationship(edge, ringEdge) != types.SegmentRelationshipNone {
				return false
			}
		}
	}
	return true
}

func (r Rectangle) edgeSegments() [4]linesegment.LineSegment {
	bottom, right, top, left := r.Edges()
	return [4]linesegment.LineSegment{bottom, right, top, left}
}

// FilterIntersectingSegments returns the subset of segs that intersects r.
func FilterIntersectingSegments(r Rectangle, segs []linesegment.LineSegment) []linesegment.LineSegment {
	out := make([]linesegment.LineSegment, 0, len(segs))
	for _, seg := range segs {
		if r.IntersectsWithSegment(seg) {
			out = append(out, seg)
		}
	}
	return out
}

// FilterOverlappingSegments returns the subset of segs that overlaps r.
func FilterOverlappingSegments(r Rectangle, segs []linesegment.LineSegment) []linesegment.LineSegment {
	out := make([]linesegment.LineSegment, 0, len(segs))
	for _, seg := range segs {
		if r.OverlapsWithSegment(seg) {
			out = append(out, seg)
		}
	}
	return out
}

// segmentBounds returns the bounding rectangle of a single segment.
func segmentBounds(seg linesegment.LineSegment) Rectangle {
	upper, lower := seg.Points()
	return boundsOfPoints([]point.Point{upper, lower})
}

// BoundsOfPoints returns the axis-aligned bounding rectangle of pts.
//
// Panics:
//   - If pts is empty.
func BoundsOfPoints(pts []point.Point) Rectangle {
	return boundsOfPoints(pts)
}

// boundsOfPoints returns the axis-aligned bounding rectangle of pts.
//
// Panics:
//   - If pts is empty.
func boundsOfPoints(pts []point.Point) Rectangle {
	minX, maxX := pts[0].X(), pts[0].X()
	minY, maxY := pts[0].Y(), pts[0].Y()
	for _, p := range pts[1:] {
		minX = min(minX, p.X())
		maxX = max(maxX, p.X())
		minY = min(minY, p.Y())
		maxY = max(maxY, p.Y())
	}
	return New(minX, minY, maxX, maxY)
}

// contourSegments returns the edges of a closed contour, connecting the
// last point back to the first.
func contourSegments(ring []point.Point) []linesegment.LineSegment {
	segs := make([]linesegment.LineSegment, 0, len(ring))
	for i := range ring {
		j := (i + 1) % len(ring)
		segs = append(segs, linesegment.NewFromPoints(ring[i], ring[j]))
	}
	return segs
}

// pointInRing reports whether p lies inside or on the boundary of the
// closed contour ring, using the even-odd ray-casting rule.
func pointInRing(p point.Point, ring []point.Point) bool {
	for _, edge := range contourSegments(ring) {
		if edge.ContainsPoint(p) {
			return true
		}
	}
	return pointInRingStrict(p, ring)
}

// pointInRingStrict reports whether p lies strictly inside the closed
// contour ring, using the standard even-odd ray-casting rule. It does not
// special-case points lying exactly on an edge; callers that need a
// boundary-inclusive test should check the ring's edges directly first,
// as [pointInRing] does.
func pointInRingStrict(p point.Point, ring []point.Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].X(), ring[i].Y()
		xj, yj := ring[j].X(), ring[j].Y()
		if (yi > p.Y()) != (yj > p.Y()) {
			xCross := (xj-xi)*(p.Y()-yi)/(yj-yi) + xi
			if p.X() < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
