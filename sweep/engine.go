package sweep

import (
	"github.com/mikenye/geom2d/linesegment"
	"github.com/mikenye/geom2d/point"
	"github.com/mikenye/geom2d/types"
)

// Edge is one segment of one operand, as handed to the engine by the
// facade (engine.go does not know or care whether it came from a polygon
// contour or a bare multisegment).
type Edge struct {
	A, B point.Point
}

// engine runs the sweep described by SPEC_FULL.md §4.4, grounded verbatim
// on original_source/clipping/core/operation.py's Operation base class
// (fill_queue, process_event, compute_fields, detect_intersection,
// divide_segment).
type engine struct {
	arena  *eventArena
	queue  *eventQueue
	status *statusStructure
	op     Operation

	processed []eventID
}

func newEngine(op Operation) *engine {
	arena := newEventArena()
	return &engine{
		arena:  arena,
		queue:  newEventQueue(arena),
		status: newStatusStructure(arena),
		op:     op,
	}
}

// fillQueue registers every edge of every operand, canonicalizing each
// edge's endpoints so the lexicographically smaller point is the left
// (start) event.
func (g *engine) fillQueue(operands [][]Edge) error {
	for operandID, edges := range operands {
		for _, edge := range edges {
			if err := g.registerSegment(edge.A, edge.B, operandID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *engine) registerSegment(a, b point.Point, operandID int) error {
	if a.Eq(b) {
		return &InvalidInputError{Reason: "zero-length edge"}
	}
	left, right := a, b
	if !pointLess(a, b) {
		left, right = b, a
	}
	leftID := g.arena.alloc(false, left, noEvent, operandID)
	rightID := g.arena.alloc(true, right, leftID, operandID)
	g.arena.get(leftID).twin = rightID
	g.queue.push(leftID)
	g.queue.push(rightID)
	return nil
}

func pointLess(a, b point.Point) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// sweep runs the event-processing loop to completion or to the operation's
// early-termination point, and returns the processed-event list the
// assembler consumes.
func (g *engine) sweep(operandMaxX []float64) ([]eventID, error) {
	for !g.queue.empty() {
		id, _ := g.queue.pop()
		if g.op.done(g.arena.get(id).point.X(), operandMaxX) {
			break
		}
		if err := g.processEvent(id); err != nil {
			return nil, err
		}
	}
	return g.processed, nil
}

func (g *engine) processEvent(id eventID) error {
	e := g.arena.get(id)

	if e.isRight {
		g.processed = append(g.processed, id)
		left := e.twin
		if g.status.contains(left) {
			aboveID, hasAbove := g.status.above(left)
			belowID, hasBelow := g.status.below(left)
			g.status.remove(left)
			if hasAbove && hasBelow {
				if _, err := g.detectIntersection(belowID, aboveID); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if g.status.contains(id) {
		// Duplicate left event surviving a split elsewhere; nothing to do.
		return nil
	}

	g.processed = append(g.processed, id)
	g.status.add(id)
	aboveID, hasAbove := g.status.above(id)
	belowID, hasBelow := g.status.below(id)
	g.computeFields(id, belowID, hasBelow)

	if hasAbove {
		split, err := g.detectIntersection(id, aboveID)
		if err != nil {
			return err
		}
		if split {
			g.computeFields(id, belowID, hasBelow)
			g.computeFields(aboveID, id, true)
		}
	}

	if hasBelow {
		split, err := g.detectIntersection(belowID, id)
		if err != nil {
			return err
		}
		if split {
			belowBelowID, hasBelowBelow := g.status.below(belowID)
			g.computeFields(belowID, belowBelowID, hasBelowBelow)
			g.computeFields(id, belowID, true)
		}
	}
	return nil
}

// detectIntersection classifies the relationship between two open edges
// (named by their left event ids) and splits them as needed. It returns
// true only when an overlap was resolved by directly rewriting edgeType on
// the two events themselves (the "starts_equal" overlap case below), which
// is the one case where the caller must immediately recompute labels;
// every other split is picked up naturally when its new events are later
// popped and inserted.
func (g *engine) detectIntersection(belowID, currID eventID) (bool, error) {
	belowLeft, belowRight := g.arena.left(belowID), g.arena.right(belowID)
	currLeft, currRight := g.arena.left(currID), g.arena.right(currID)
	belowSeg := linesegment.NewFromPoints(belowLeft, belowRight)
	currSeg := linesegment.NewFromPoints(currLeft, currRight)

	relationship := linesegment.SegmentsRelationship(belowSeg, currSeg)

	switch relationship {
	case types.SegmentRelationshipNone:
		return false, nil

	case types.SegmentRelationshipOverlap:
		belowEvt, currEvt := g.arena.get(belowID), g.arena.get(currID)
		if belowEvt.operandID == currEvt.operandID {
			return false, &SelfOverlapError{OperandID: belowEvt.operandID}
		}
		return g.handleOverlap(belowID, currID)

	default: // Cross, or Touch at a single point.
		if !belowLeft.Eq(currLeft) && !belowRight.Eq(currRight) {
			p, ok := linesegment.SegmentsIntersection(belowSeg, currSeg)
			if !ok {
				return false, &GeometryOracleContractError{
					Detail: "segments_relationship reported an intersection but segments_intersection found none",
				}
			}
			if !p.Eq(belowLeft) && !p.Eq(belowRight) {
				g.divideSegment(belowID, p)
			}
			if !p.Eq(currLeft) && !p.Eq(currRight) {
				g.divideSegment(currID, p)
			}
		}
		return false, nil
	}
}

// handleOverlap implements the OVERLAP branch of SPEC_FULL.md §4.4's
// intersection handling, grounded verbatim on operation.py's
// detect_intersection OVERLAP case.
func (g *engine) handleOverlap(belowID, currID eventID) (bool, error) {
	less := eventQueueLess(g.arena)
	belowEvt, currEvt := g.arena.get(belowID), g.arena.get(currID)
	belowLeft, belowRight := g.arena.left(belowID), g.arena.right(belowID)
	currLeft, currRight := g.arena.left(currID), g.arena.right(currID)

	startsEqual := belowLeft.Eq(currLeft)
	var startMin, startMax eventID
	if !startsEqual {
		if less(currID, belowID) {
			startMin, startMax = currID, belowID
		} else {
			startMin, startMax = belowID, currID
		}
	}

	belowRightID, currRightID := belowEvt.twin, currEvt.twin
	endsEqual := currRight.Eq(belowRight)
	var endMin, endMax eventID
	if !endsEqual {
		if less(currRightID, belowRightID) {
			endMin, endMax = currRightID, belowRightID
		} else {
			endMin, endMax = belowRightID, currRightID
		}
	}

	if startsEqual {
		belowEvt.edgeType = types.EdgeTypeNonContributing
		if currEvt.inOut == belowEvt.inOut {
			currEvt.edgeType = types.EdgeTypeSameTransition
		} else {
			currEvt.edgeType = types.EdgeTypeDifferentTransition
		}
		if !endsEqual {
			g.divideSegment(g.arena.get(endMax).twin, g.arena.left(endMin))
		}
		return true, nil
	}

	if endsEqual {
		g.divideSegment(startMin, g.arena.left(startMax))
		return false, nil
	}

	if startMin == g.arena.get(endMax).twin {
		// One segment contains the other.
		g.divideSegment(startMin, g.arena.left(endMin))
		g.divideSegment(startMin, g.arena.left(startMax))
		return false, nil
	}

	// Proper partial overlap.
	g.divideSegment(startMax, g.arena.left(endMin))
	g.divideSegment(startMin, g.arena.left(startMax))
	return false, nil
}

// divideSegment splits the edge named by the left event id at p, growing a
// new right event for the original left event and a new left event
// continuing on to the original right event, per SPEC_FULL.md §4.4's
// intersection-handling note. Both new events are pushed onto the queue.
func (g *engine) divideSegment(id eventID, p point.Point) {
	e := g.arena.get(id)
	rID := e.twin

	newRightID := g.arena.alloc(true, p, id, e.operandID)
	newLeftID := g.arena.alloc(false, p, rID, e.operandID)

	g.arena.get(rID).twin = newLeftID
	e.twin = newRightID

	g.queue.push(newLeftID)
	g.queue.push(newRightID)
}
