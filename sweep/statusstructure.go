package sweep

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/mikenye/geom2d/point"
)

// statusStructure is the sweep-line's ordered set of currently-open edges,
// keyed by vertical position at the current sweep-x. Backed by
// emirpasic/gods' red-black tree, grounded structurally on the teacher's
// linesegment/sweepline_statusstructure_rbt.go (since deleted), which
// already wires that library as a comparator-driven ordered set; the
// comparator itself is rebuilt from original_source/clipping/core/
// sweep_line.py's BinarySweepLineKey.__lt__ rather than the teacher's own
// XAtY-threaded comparator, since that comparator solved a narrower,
// different problem (pure intersection-finding rather than a full
// Boolean-operation sweep).
type statusStructure struct {
	arena *eventArena
	tree  *rbt.Tree
}

func newStatusStructure(arena *eventArena) *statusStructure {
	return &statusStructure{
		arena: arena,
		tree:  rbt.NewWith(statusComparator(arena)),
	}
}

// add inserts the left event id (naming the edge by its left endpoint) into
// the status structure.
func (s *statusStructure) add(id eventID) {
	s.tree.Put(id, nil)
}

// remove takes the left event id back out of the status structure.
func (s *statusStructure) remove(id eventID) {
	s.tree.Remove(id)
}

// contains reports whether the edge named by the left event id is
// currently open.
func (s *statusStructure) contains(id eventID) bool {
	_, found := s.tree.Get(id)
	return found
}

// above returns the edge immediately above id in the status structure, if
// any.
func (s *statusStructure) above(id eventID) (eventID, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if it.Next() {
		return it.Key().(eventID), true
	}
	return noEvent, false
}

// below returns the edge immediately below id in the status structure, if
// any.
func (s *statusStructure) below(id eventID) (eventID, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if it.Prev() {
		return it.Key().(eventID), true
	}
	return noEvent, false
}

// statusComparator implements SPEC_FULL.md §4.3's sweep-line ordering,
// translated from BinarySweepLineKey.__lt__: orientation of the other
// edge's endpoints against this edge's line is the primary test, with a
// symmetric fallback, a collinear fallback that orders by operand_id first
// (standing in for the Python original's "from_left" flag) and only then
// compares endpoints, and a final eventID tie-break for strict totality (required by
// any red-black tree keyed by a comparator — spec.md §6 itself requires the
// comparator be "a strict weak order over the live set").
func statusComparator(arena *eventArena) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		idA, idB := a.(eventID), b.(eventID)
		if idA == idB {
			return 0
		}
		if statusLess(arena, idA, idB) {
			return -1
		}
		if statusLess(arena, idB, idA) {
			return 1
		}
		if idA < idB {
			return -1
		}
		return 1
	}
}

func statusLess(arena *eventArena, idA, idB eventID) bool {
	if idA == idB {
		return false
	}
	startA, endA := arena.left(idA), arena.right(idA)
	startB, endB := arena.left(idB), arena.right(idB)

	otherStartOrientation := point.Orientation(endA, startA, startB)
	otherEndOrientation := point.Orientation(endA, startA, endB)

	if otherStartOrientation == otherEndOrientation {
		if otherStartOrientation != point.Collinear {
			return otherStartOrientation == point.Counterclockwise
		}
		// Collinear: fall back to operand precedence, then lexicographic
		// comparison of endpoints.
		operandA, operandB := arena.get(arena.leftEvent(idA)).operandID, arena.get(arena.leftEvent(idB)).operandID
		if operandA != operandB {
			return operandA < operandB
		}
		if startA.X() == startB.X() {
			if startA.Y() != startB.Y() {
				return startA.Y() < startB.Y()
			}
			if endA.Y() != endB.Y() {
				return endA.Y() < endB.Y()
			}
			return endA.X() < endB.X()
		}
		if startA.Y() != startB.Y() {
			return startA.Y() < startB.Y()
		}
		return startA.X() < startB.X()
	}

	startOrientation := point.Orientation(endB, startB, startA)
	endOrientation := point.Orientation(endB, startB, endA)
	if startOrientation == endOrientation {
		return startOrientation == point.Clockwise
	}
	if otherStartOrientation == point.Collinear {
		return otherEndOrientation == point.Counterclockwise
	}
	if startOrientation == point.Collinear {
		return endOrientation == point.Clockwise
	}
	if endOrientation == point.Collinear {
		return startOrientation == point.Clockwise
	}
	return otherStartOrientation == point.Counterclockwise
}
