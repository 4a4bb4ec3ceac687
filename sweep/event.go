// Package sweep implements the event-driven plane sweep that underlies every
// Boolean set operation (union, intersection, difference, symmetric
// difference, and complete intersection) over multipolygons and
// multisegments.
package sweep

import (
	"github.com/mikenye/geom2d/point"
	"github.com/mikenye/geom2d/types"
)

// eventID is a handle into an eventArena. noEvent is the sentinel for "no
// such event", standing in for a nil pointer so events can live in a slice
// rather than a web of pointers.
type eventID int

const noEvent eventID = -1

// sweepEvent is one endpoint of one edge as encountered by the sweep: a
// left (start) event or a right (end) event. Every field here is either
// static (set once, at creation) or mutated exactly as described in
// DESIGN.md's grounding for this file; nothing is mutated after the
// assembler has consumed it, other than the assembly-time fields
// (position, contourID, resultInOut) which the assembler itself owns.
type sweepEvent struct {
	id eventID

	// isRight is false for a left (start) event, true for a right (end)
	// event.
	isRight bool

	// point is this event's own endpoint.
	point point.Point

	// twin is the event for the other endpoint of the same edge.
	twin eventID

	// operandID identifies which input operand contributed this edge.
	operandID int

	// edgeType starts Normal and is rewritten when an overlap with
	// another edge is detected during the sweep.
	edgeType types.EdgeType

	// inOut and otherInOut are set once, when the event is inserted into
	// the sweep-line status structure (see labels.go).
	inOut      bool
	otherInOut bool

	// inResult records whether this edge contributes to the operation's
	// output; computed immediately after inOut/otherInOut.
	inResult bool

	// belowInResultEvent is the nearest edge strictly below this one that
	// is itself inResult, used by the assembler to derive hole parentage.
	belowInResultEvent eventID

	// position, contourID, resultInOut are written only by the assembler.
	position    int
	contourID   int
	resultInOut bool
}

// eventArena owns the lifetime of every sweepEvent created during one
// operation's sweep: events are appended on creation and on every split,
// and never removed, so eventID handles stay valid for the life of the
// arena.
type eventArena struct {
	events []*sweepEvent
}

func newEventArena() *eventArena {
	return &eventArena{}
}

// alloc creates a new event and returns its handle. twin may be noEvent if
// the paired event has not been created yet; the caller is responsible for
// wiring twin links on both sides.
func (a *eventArena) alloc(isRight bool, p point.Point, twin eventID, operandID int) eventID {
	id := eventID(len(a.events))
	a.events = append(a.events, &sweepEvent{
		id:                 id,
		isRight:            isRight,
		point:              p,
		twin:               twin,
		operandID:          operandID,
		edgeType:           types.EdgeTypeNormal,
		belowInResultEvent: noEvent,
	})
	return id
}

func (a *eventArena) get(id eventID) *sweepEvent {
	return a.events[id]
}

// left returns the left (start) endpoint of the edge id belongs to,
// regardless of whether id itself names the left or the right event.
func (a *eventArena) left(id eventID) point.Point {
	e := a.get(id)
	if e.isRight {
		return a.get(e.twin).point
	}
	return e.point
}

// right returns the right (end) endpoint of the edge id belongs to.
func (a *eventArena) right(id eventID) point.Point {
	e := a.get(id)
	if e.isRight {
		return e.point
	}
	return a.get(e.twin).point
}

// leftEvent returns the handle of the left (start) event of the edge id
// belongs to.
func (a *eventArena) leftEvent(id eventID) eventID {
	e := a.get(id)
	if e.isRight {
		return e.twin
	}
	return id
}

// isVertical reports whether the edge id belongs to is vertical, i.e. its
// two endpoints share an x-coordinate.
func (a *eventArena) isVertical(id eventID) bool {
	return a.left(id).X() == a.right(id).X()
}
