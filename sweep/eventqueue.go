package sweep

import (
	"github.com/google/btree"
	"github.com/mikenye/geom2d/point"
)

// eventQueue is the sweep's min-priority queue of pending events, backed by
// a B-tree keyed by the event comparison order, grounded on the teacher's
// own use of google/btree for an event queue (linesegment/
// sweepline_eventqueue.go, since deleted) — here wired to the engine's own
// arena and ordering rule instead of that file's narrower one.
type eventQueue struct {
	arena *eventArena
	tree  *btree.BTreeG[eventID]
}

func newEventQueue(arena *eventArena) *eventQueue {
	less := eventQueueLess(arena)
	return &eventQueue{
		arena: arena,
		tree:  btree.NewG[eventID](32, less),
	}
}

func (q *eventQueue) push(id eventID) {
	q.tree.ReplaceOrInsert(id)
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}

// pop removes and returns the minimum event in the queue.
func (q *eventQueue) pop() (eventID, bool) {
	return q.tree.DeleteMin()
}

// eventQueueLess implements the event comparison order of SPEC_FULL.md
// §4.2: x ascending, y ascending, left-before-right, an orientation
// tie-break among same-point same-kind events, then operand_id. The
// orientation tie-break's sign is inverted for right-right pairs relative
// to left-left pairs, matching the clipping library's EventsQueueKey. A
// final eventID tie-break guarantees a strict total order over the
// B-tree's live set even when the spec's own rule leaves two distinct
// events tied (the B-tree silently drops the second of two keys it
// considers equal).
func eventQueueLess(arena *eventArena) btree.LessFunc[eventID] {
	return func(a, b eventID) bool {
		if a == b {
			return false
		}
		ea, eb := arena.get(a), arena.get(b)

		if ea.point.X() != eb.point.X() {
			return ea.point.X() < eb.point.X()
		}
		if ea.point.Y() != eb.point.Y() {
			return ea.point.Y() < eb.point.Y()
		}
		if ea.isRight != eb.isRight {
			return !ea.isRight
		}

		twinA, twinB := arena.get(ea.twin).point, arena.get(eb.twin).point
		if orient := point.Orientation(ea.point, twinA, twinB); orient != point.Collinear {
			less := orient == point.Clockwise
			if ea.isRight {
				less = !less
			}
			return less
		}

		if ea.operandID != eb.operandID {
			return ea.operandID < eb.operandID
		}
		return a < b
	}
}
