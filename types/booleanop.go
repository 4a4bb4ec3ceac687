package types

import "fmt"

// BooleanOp names one of the five Boolean set operations the sweep engine
// can compute over multipolygons or multisegments.
type BooleanOp uint8

// Valid values for BooleanOp:
const (
	// BooleanOpUnion computes the set union of all operands.
	BooleanOpUnion BooleanOp = iota

	// BooleanOpIntersection computes the set intersection of two operands.
	BooleanOpIntersection

	// BooleanOpDifference computes operand 0 minus operand 1.
	BooleanOpDifference

	// BooleanOpSymmetricDifference computes the symmetric difference of
	// two operands: the union minus the intersection.
	BooleanOpSymmetricDifference

	// BooleanOpCompleteIntersection computes the intersection along with
	// the lower-dimensional remnants (isolated touching points and
	// overlapping-but-non-crossing segments) that a plain intersection
	// would discard.
	BooleanOpCompleteIntersection
)

// String converts a [BooleanOp] value to its string representation.
//
// Panics:
//   - If the value is not one of the defined constants.
func (op BooleanOp) String() string {
	switch op {
	case BooleanOpUnion:
		return "BooleanOpUnion"
	case BooleanOpIntersection:
		return "BooleanOpIntersection"
	case BooleanOpDifference:
		return "BooleanOpDifference"
	case BooleanOpSymmetricDifference:
		return "BooleanOpSymmetricDifference"
	case BooleanOpCompleteIntersection:
		return "BooleanOpCompleteIntersection"
	default:
		panic(fmt.Errorf("unsupported boolean op: %d", op))
	}
}
