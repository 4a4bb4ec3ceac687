package sweep

import "github.com/mikenye/geom2d/types"

// Operation is the small seam the engine uses to vary by Boolean operation:
// queue-filling, event processing, and assembly are shared (engine.go,
// assembler.go); only the in_result predicate and the early-termination
// test differ per operation, exactly as DESIGN NOTES in SPEC_FULL.md §9
// recommends ("model as a tagged variant or a small trait/interface with
// two methods; avoid open inheritance hierarchies"). Grounded on
// original_source/clipping/core/operation.py's five Operation subclasses,
// each of which overrides only `in_result` (and, for Difference/
// Intersection, `sweep`'s early-exit condition).
type Operation interface {
	// inResult implements SPEC_FULL.md §4.5's operation predicate table.
	inResult(e *sweepEvent) bool

	// done reports whether the sweep may stop once the next pending
	// event's x exceeds maxX, the per-operand maximum x passed to it.
	// maxX is the full set of operand maxima; each operation decides what
	// to do with it.
	done(nextX float64, operandMaxX []float64) bool
}

// unionOp implements Union: `NORMAL ∧ other_in_out` ∨ `SAME_TRANSITION`.
// Runs to completion.
type unionOp struct{}

func (unionOp) inResult(e *sweepEvent) bool {
	switch e.edgeType {
	case types.EdgeTypeNormal:
		return e.otherInOut
	case types.EdgeTypeSameTransition:
		return true
	default:
		return false
	}
}

func (unionOp) done(float64, []float64) bool { return false }

// intersectionOp implements Intersection: `NORMAL ∧ ¬other_in_out` ∨
// `SAME_TRANSITION`. Stops once the sweep passes the smallest of the
// operands' maximum x.
type intersectionOp struct{}

func (intersectionOp) inResult(e *sweepEvent) bool {
	switch e.edgeType {
	case types.EdgeTypeNormal:
		return !e.otherInOut
	case types.EdgeTypeSameTransition:
		return true
	default:
		return false
	}
}

func (intersectionOp) done(nextX float64, operandMaxX []float64) bool {
	return nextX > minOf(operandMaxX)
}

// differenceOp implements Difference: operand 0 minus operand 1. Stops
// once the sweep passes operand 0's maximum x.
type differenceOp struct{}

func (differenceOp) inResult(e *sweepEvent) bool {
	switch e.edgeType {
	case types.EdgeTypeNormal:
		return (e.operandID == 0) == e.otherInOut
	case types.EdgeTypeDifferentTransition:
		return true
	default:
		return false
	}
}

func (differenceOp) done(nextX float64, operandMaxX []float64) bool {
	return nextX > operandMaxX[0]
}

// symmetricDifferenceOp implements SymmetricDifference: `NORMAL`. Runs to
// completion.
type symmetricDifferenceOp struct{}

func (symmetricDifferenceOp) inResult(e *sweepEvent) bool {
	return e.edgeType == types.EdgeTypeNormal
}

func (symmetricDifferenceOp) done(float64, []float64) bool { return false }

// completeIntersectionOp shares Intersection's in_result rule and
// early-termination test; the engine additionally records isolated
// touching points and overlapping-but-non-crossing remnants when running
// this operation (see facade.go's CompleteIntersect).
type completeIntersectionOp struct {
	intersectionOp
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
