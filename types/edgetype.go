package types

import "fmt"

// EdgeType classifies a sweep event's contribution to the result,
// rewritten from its initial NORMAL value when an overlap with another
// edge is detected during the sweep.
type EdgeType uint8

// Valid values for EdgeType:
const (
	// EdgeTypeNormal is the initial classification of every edge: it has
	// not been found to overlap any other edge.
	EdgeTypeNormal EdgeType = iota

	// EdgeTypeNonContributing marks an edge that coincides with another
	// edge and has been superseded by it; it never contributes to the
	// result regardless of operation.
	EdgeTypeNonContributing

	// EdgeTypeSameTransition marks the surviving edge of an overlapping
	// pair whose in_out labels agree.
	EdgeTypeSameTransition

	// EdgeTypeDifferentTransition marks the surviving edge of an
	// overlapping pair whose in_out labels disagree.
	EdgeTypeDifferentTransition
)

// String converts an [EdgeType] value to its string representation.
//
// Panics:
//   - If the value is not one of the defined constants.
func (e EdgeType) String() string {
	switch e {
	case EdgeTypeNormal:
		return "EdgeTypeNormal"
	case EdgeTypeNonContributing:
		return "EdgeTypeNonContributing"
	case EdgeTypeSameTransition:
		return "EdgeTypeSameTransition"
	case EdgeTypeDifferentTransition:
		return "EdgeTypeDifferentTransition"
	default:
		panic(fmt.Errorf("unsupported edge type: %d", e))
	}
}
