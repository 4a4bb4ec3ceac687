package sweep

// computeFields implements SPEC_FULL.md §4.5's label propagation rules,
// grounded verbatim on operation.py's compute_fields. id is always a left
// event; belowID names the edge immediately below id in the status
// structure at the moment of the call, if hasBelow.
func (g *engine) computeFields(id, belowID eventID, hasBelow bool) {
	e := g.arena.get(id)

	if !hasBelow {
		e.inOut = false
		e.otherInOut = true
		e.belowInResultEvent = noEvent
	} else {
		below := g.arena.get(belowID)

		if e.operandID == below.operandID {
			e.inOut = !below.inOut
			e.otherInOut = below.otherInOut
		} else {
			e.inOut = !below.otherInOut
			if g.arena.isVertical(belowID) {
				e.otherInOut = !below.inOut
			} else {
				e.otherInOut = below.inOut
			}
		}

		if !g.op.inResult(below) || g.arena.isVertical(belowID) {
			e.belowInResultEvent = below.belowInResultEvent
		} else {
			e.belowInResultEvent = belowID
		}
	}

	e.inResult = g.op.inResult(e)
}
