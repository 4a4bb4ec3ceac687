package linesegment

import (
	"github.com/mikenye/geom2d/point"
	"github.com/mikenye/geom2d/types"
)

// SegmentsRelationship classifies how two line segments meet, without
// computing the intersection itself. It is the geometry oracle's
// segment-relationship primitive consumed by the sweep engine's
// intersection handler.
//
// Classification rules:
//   - If the segments' bounding boxes do not overlap, they share no point:
//     [types.SegmentRelationshipNone].
//   - If both segments are collinear with each other and their projections
//     onto that line overlap in more than one point:
//     [types.SegmentRelationshipOverlap].
//   - If the segments are collinear but meet at a single point (sharing
//     exactly one endpoint), or are not collinear but intersect at a point
//     that is an endpoint of at least one of them: [types.
//     SegmentRelationshipTouch].
//   - Otherwise, if they intersect at a point interior to both:
//     [types.SegmentRelationshipCross].
func SegmentsRelationship(a, b LineSegment) types.SegmentRelationship {
	o1 := point.Orientation(a.upper, a.lower, b.upper)
	o2 := point.Orientation(a.upper, a.lower, b.lower)
	o3 := point.Orientation(b.upper, b.lower, a.upper)
	o4 := point.Orientation(b.upper, b.lower, a.lower)

	collinear := o1 == point.Collinear && o2 == point.Collinear &&
		o3 == point.Collinear && o4 == point.Collinear

	if collinear {
		return collinearRelationship(a, b)
	}

	// General crossing case: each segment's endpoints straddle the other.
	if o1 != o2 && o3 != o4 {
		if o1 == point.Collinear || o2 == point.Collinear ||
			o3 == point.Collinear || o4 == point.Collinear {
			return types.SegmentRelationshipTouch
		}
		return types.SegmentRelationshipCross
	}

	// One segment's endpoint lies exactly on the other: a touch.
	if (o1 == point.Collinear && a.ContainsPoint(b.upper)) ||
		(o2 == point.Collinear && a.ContainsPoint(b.lower)) ||
		(o3 == point.Collinear && b.ContainsPoint(a.upper)) ||
		(o4 == point.Collinear && b.ContainsPoint(a.lower)) {
		return types.SegmentRelationshipTouch
	}

	return types.SegmentRelationshipNone
}

// collinearRelationship classifies two collinear segments by measuring
// how far their projections onto the shared line overlap.
func collinearRelationship(a, b LineSegment) types.SegmentRelationship {
	aContainsBUpper := a.ContainsPoint(b.upper)
	aContainsBLower := a.ContainsPoint(b.lower)
	bContainsAUpper := b.ContainsPoint(a.upper)
	bContainsALower := b.ContainsPoint(a.lower)

	if !aContainsBUpper && !aContainsBLower && !bContainsAUpper && !bContainsALower {
		return types.SegmentRelationshipNone
	}

	sharedCount := 0
	if a.upper.Eq(b.upper) || a.upper.Eq(b.lower) {
		sharedCount++
	}
	if a.lower.Eq(b.upper) || a.lower.Eq(b.lower) {
		sharedCount++
	}

	// Segments meet only at a single shared endpoint with no further
	// overlap: a touch, not an overlap.
	if sharedCount > 0 {
		interiorOverlap := (aContainsBUpper && !b.upper.Eq(a.upper) && !b.upper.Eq(a.lower)) ||
			(aContainsBLower && !b.lower.Eq(a.upper) && !b.lower.Eq(a.lower)) ||
			(bContainsAUpper && !a.upper.Eq(b.upper) && !a.upper.Eq(b.lower)) ||
			(bContainsALower && !a.lower.Eq(b.upper) && !a.lower.Eq(b.lower))
		if !interiorOverlap {
			return types.SegmentRelationshipTouch
		}
	}

	return types.SegmentRelationshipOverlap
}

// SegmentsIntersection computes the single intersection point of two
// segments, valid only when [SegmentsRelationship] reports
// [types.SegmentRelationshipCross] or [types.SegmentRelationshipTouch] at a
// single point. It is the geometry oracle's segment-intersection
// primitive; callers must not invoke it when the relationship is
// [types.SegmentRelationshipNone] or [types.SegmentRelationshipOverlap].
//
// Returns the intersection point and true if one exists within both
// segments' bounds; otherwise returns the zero point and false.
func SegmentsIntersection(a, b LineSegment) (point.Point, bool) {
	points, ok := a.IntersectionPoints(b)
	if !ok || len(points) != 1 {
		return point.Point{}, false
	}
	return points[0], true
}
