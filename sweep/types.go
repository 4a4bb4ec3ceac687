package sweep

import (
	"github.com/mikenye/geom2d/linesegment"
	"github.com/mikenye/geom2d/point"
)

// Contour is an ordered, non-self-intersecting ring of vertices. By
// convention an outer border is counterclockwise and a hole is clockwise,
// per SPEC_FULL.md §3/§4.6's depth-based reversal rule.
type Contour []point.Point

// Polygon is one outer border plus zero or more holes directly nested in
// it (never hole-of-hole; a hole's own hole is promoted to an external
// Polygon of the Multipolygon, per SPEC_FULL.md §4.6).
type Polygon struct {
	Border Contour
	Holes  []Contour
}

// Multipolygon is an unordered collection of polygons. In an operation's
// output the polygons are interior-disjoint but may share boundary points
// (two squares meeting at a corner come out as two polygons); an operand
// need not be disjoint at all.
type Multipolygon []Polygon

// Multisegment is an unordered collection of line segments, used both as
// an operand representation and as part of a Mix result.
type Multisegment []linesegment.LineSegment

// Mix is the result of CompleteIntersect: isolated touching points,
// overlapping-but-non-crossing segment remnants, and the ordinary
// polygonal intersection, reported separately because none of them can be
// folded into the others without losing information.
type Mix struct {
	Points   []point.Point
	Segments Multisegment
	Polygons Multipolygon
}

// Coercer is the seam spec.md §9's exact-arithmetic note describes:
// accurate=true asks the facade to run operands through a Coercer before
// sweeping, trading speed for robustness against float64 cancellation
// error. The zero value of the package is effectively the default no-op
// Coercer (identityCoercer), since float64 is already the sweep's native
// representation and exact rational arithmetic is out of scope.
type Coercer interface {
	ToExact([]Polygon) ([]Polygon, error)
}

type identityCoercer struct{}

func (identityCoercer) ToExact(ps []Polygon) ([]Polygon, error) { return ps, nil }
