package types

import "fmt"

// SegmentRelationship classifies how two line segments relate to one
// another for the purposes of the planar sweep. Unlike [Relationship],
// which describes containment between shapes, SegmentRelationship
// distinguishes the specific ways two segments can meet: not at all, at a
// single boundary point, crossing through each other's interior, or lying
// collinear and overlapping.
type SegmentRelationship uint8

// Valid values for SegmentRelationship:
const (
	// SegmentRelationshipNone indicates the segments share no point.
	SegmentRelationshipNone SegmentRelationship = iota

	// SegmentRelationshipTouch indicates the segments meet at exactly one
	// point that is an endpoint of at least one of them.
	SegmentRelationshipTouch

	// SegmentRelationshipCross indicates the segments meet at exactly one
	// point interior to both.
	SegmentRelationshipCross

	// SegmentRelationshipOverlap indicates the segments are collinear and
	// share more than one point.
	SegmentRelationshipOverlap
)

// String converts a [SegmentRelationship] value to its string representation.
//
// Panics:
//   - If the value is not one of the defined constants.
func (r SegmentRelationship) String() string {
	switch r {
	case SegmentRelationshipNone:
		return "SegmentRelationshipNone"
	case SegmentRelationshipTouch:
		return "SegmentRelationshipTouch"
	case SegmentRelationshipCross:
		return "SegmentRelationshipCross"
	case SegmentRelationshipOverlap:
		return "SegmentRelationshipOverlap"
	default:
		panic(fmt.Errorf("unsupported segment relationship type: %d", r))
	}
}
