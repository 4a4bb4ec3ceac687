package sweep

import (
	"sort"

	"github.com/mikenye/geom2d/point"
)

// eventsToMultipolygon turns the processed-event list a sweep produced into
// a Multipolygon, grounded verbatim on operation.py's
// events_to_multipolygon/_collect_events/_contours_to_multipolygon/
// _events_to_contours/_shrink_collinear_vertices/_to_next_position.
func eventsToMultipolygon(arena *eventArena, processed []eventID) Multipolygon {
	areInternal := map[int]bool{}
	holes := map[int][]int{}
	collected := collectEvents(arena, processed)
	contours := eventsToContours(arena, collected, areInternal, holes)
	return contoursToMultipolygon(contours, areInternal, holes)
}

// collectEvents filters the processed list down to the events that
// contribute to the result, sorts them by the event comparison order, and
// (per operation.py's position-swap) has every right event trade its
// assigned position with its twin's — so following an event's `position`
// field always jumps to the opposite endpoint of the same edge within this
// slice.
func collectEvents(arena *eventArena, processed []eventID) []eventID {
	less := eventQueueLess(arena)

	filtered := make([]eventID, 0, len(processed))
	for _, id := range processed {
		e := arena.get(id)
		if !e.isRight && e.inResult {
			filtered = append(filtered, id)
		} else if e.isRight && arena.get(e.twin).inResult {
			filtered = append(filtered, id)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })

	for index, id := range filtered {
		arena.get(id).position = index
	}
	for _, id := range filtered {
		e := arena.get(id)
		if e.isRight {
			twin := arena.get(e.twin)
			e.position, twin.position = twin.position, e.position
		}
	}
	return filtered
}

// eventsToContours walks the position-linked event list into closed rings,
// determines each ring's parent/depth via belowInResultEvent, and reverses
// rings nested at odd depth so holes wind opposite their container.
func eventsToContours(arena *eventArena, events []eventID, areInternal map[int]bool, holes map[int][]int) []Contour {
	depths := map[int]int{}
	parents := map[int]int{}
	processed := make([]bool, len(events))
	var contours []Contour

	for index := range events {
		if processed[index] {
			continue
		}

		event := arena.get(events[index])
		initial := event.point
		contour := Contour{initial}
		var steps []eventID
		steps = append(steps, events[index])

		position := index
		for position >= index {
			stepID := events[position]
			if arena.get(arena.get(stepID).twin).point.Eq(initial) {
				break
			}
			processed[position] = true
			steps = append(steps, stepID)
			position = arena.get(stepID).position
			processed[position] = true
			contour = append(contour, arena.get(events[position]).point)
			position = toNextPosition(arena, position, events, processed, index)
		}
		if position == -1 {
			position = index
		}
		lastEvent := arena.get(events[position])
		processed[position] = true
		processed[lastEvent.position] = true

		contour = shrinkCollinearVertices(contour)
		if len(contour) < 3 {
			continue
		}

		contourID := len(contours)

		isInternal := false
		if event.belowInResultEvent != noEvent {
			below := arena.get(event.belowInResultEvent)
			belowContourID := below.contourID
			if !below.resultInOut {
				holes[belowContourID] = append(holes[belowContourID], contourID)
				parents[contourID] = belowContourID
				depths[contourID] = depths[belowContourID] + 1
				isInternal = true
			} else if areInternal[belowContourID] {
				belowParentID := parents[belowContourID]
				holes[belowParentID] = append(holes[belowParentID], contourID)
				parents[contourID] = belowParentID
				depths[contourID] = depths[belowContourID]
				isInternal = true
			}
		}
		areInternal[contourID] = isInternal

		for _, stepID := range steps {
			se := arena.get(stepID)
			if se.isRight {
				twin := arena.get(se.twin)
				twin.resultInOut = true
				twin.contourID = contourID
			} else {
				se.resultInOut = false
				se.contourID = contourID
			}
		}
		twinOfLast := arena.get(lastEvent.twin)
		twinOfLast.resultInOut = true
		twinOfLast.contourID = contourID

		if depths[contourID]%2 == 1 {
			reverseContour(contour)
		}

		contours = append(contours, contour)
	}
	return contours
}

func reverseContour(c Contour) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// toNextPosition finds the next unprocessed event sharing the current
// point, preferring the next higher index and falling back to a backward
// scan bounded by the contour's own starting index.
func toNextPosition(arena *eventArena, position int, events []eventID, processed []bool, originalIndex int) int {
	p := arena.left(events[position])
	result := position + 1
	for result < len(events) && arena.left(events[result]).Eq(p) {
		if !processed[result] {
			return result
		}
		result++
	}
	result = position - 1
	for result >= originalIndex && processed[result] {
		result--
	}
	return result
}

func contoursToMultipolygon(contours []Contour, areInternal map[int]bool, holes map[int][]int) Multipolygon {
	var result Multipolygon
	for index, contour := range contours {
		if !areInternal[index] {
			var holePolys []Contour
			for _, holeIndex := range holes[index] {
				holePolys = append(holePolys, contours[holeIndex])
			}
			result = append(result, Polygon{Border: contour, Holes: holePolys})
		} else {
			for _, holeIndex := range holes[index] {
				var grandHoles []Contour
				for _, hh := range holes[holeIndex] {
					grandHoles = append(grandHoles, contours[hh])
				}
				result = append(result, Polygon{Border: contours[holeIndex], Holes: grandHoles})
			}
		}
	}
	return result
}

// shrinkCollinearVertices removes vertices that sit exactly between their
// neighbors on a straight line, scanning from both ends of the ring. A
// vertex visited twice elsewhere in the ring (a self-intersection point)
// is never removed, since collapsing it could merge two distinct loops.
func shrinkCollinearVertices(contour Contour) Contour {
	c := contour
	selfIntersections := map[point.Point]struct{}{}
	seen := map[point.Point]struct{}{}
	for _, v := range c {
		if _, ok := seen[v]; ok {
			selfIntersections[v] = struct{}{}
		} else {
			seen[v] = struct{}{}
		}
	}

	at := func(i int) point.Point {
		if i < 0 {
			return c[len(c)+i]
		}
		return c[i]
	}
	isSelfIntersection := func(p point.Point) bool {
		_, ok := selfIntersections[p]
		return ok
	}
	deleteAt := func(i int) {
		if i < 0 {
			i = len(c) + i
		}
		c = append(c[:i], c[i+1:]...)
	}
	maxInt := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}

	index := -len(c) + 1
	for index < 0 {
		for maxInt(2, -index) < len(c) &&
			!isSelfIntersection(at(index+1)) &&
			point.Orientation(at(index+2), at(index+1), at(index)) == point.Collinear {
			deleteAt(index + 1)
		}
		index++
	}
	for index < len(c) {
		for maxInt(2, index) < len(c) &&
			!isSelfIntersection(at(index-1)) &&
			point.Orientation(at(index-2), at(index-1), at(index)) == point.Collinear {
			deleteAt(index - 1)
		}
		index++
	}
	return c
}
