package geom2d

import (
	"fmt"

	"github.com/mikenye/geom2d/point"
	"github.com/mikenye/geom2d/sweep"
	"github.com/mikenye/geom2d/types"
)

// ToMultipolygon flattens a PolyTree into the sweep package's representation:
// one sweep.Polygon per solid region, carrying its direct hole children as
// Holes. A hole's own solid children (islands nested inside a hole) have no
// home in that one-level Polygon, so each becomes its own entry in the
// returned Multipolygon, per the same flattening rule the sweep assembler
// uses when it promotes a hole-of-a-hole back out to an external polygon.
//
// t is expected to be a PTSolid root, which is how every caller in this
// package constructs operands. Sibling solids at t's own level are not
// walked here (t.siblings is for describing peer polygons reached by
// traversal elsewhere; Unite's variadic operand list is the idiomatic way
// to hand this function more than one top-level solid).
func ToMultipolygon(t *PolyTree[float64]) sweep.Multipolygon {
	if t == nil {
		return nil
	}
	var result sweep.Multipolygon
	appendSolid(t, &result)
	return result
}

func appendSolid(t *PolyTree[float64], out *sweep.Multipolygon) {
	var holes []sweep.Contour
	for _, hole := range t.children {
		holes = append(holes, contourToSweep(hole))
		for _, island := range hole.children {
			appendSolid(island, out)
		}
	}
	*out = append(*out, sweep.Polygon{Border: contourToSweep(t), Holes: holes})
}

func contourToSweep(t *PolyTree[float64]) sweep.Contour {
	pts := t.contour.toPoints()
	c := make(sweep.Contour, len(pts))
	for i, p := range pts {
		c[i] = point.New(p.X(), p.Y())
	}
	return c
}

// FromMultipolygon rebuilds a PolyTree hierarchy from a sweep.Multipolygon,
// the reverse of [ToMultipolygon]. Each Polygon becomes a PTSolid node with
// its Holes as PTHole children; multiple Polygons in mp become siblings of
// the first one returned.
//
// Returns nil, nil for an empty mp.
func FromMultipolygon(mp sweep.Multipolygon) (*PolyTree[float64], error) {
	var root *PolyTree[float64]
	for _, poly := range mp {
		t, err := polygonToPolyTree(poly)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = t
			continue
		}
		if err := root.addSibling(t); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func polygonToPolyTree(poly sweep.Polygon) (*PolyTree[float64], error) {
	holes := make([]*PolyTree[float64], len(poly.Holes))
	for i, hole := range poly.Holes {
		h, err := NewPolyTree(contourFromSweep(hole), PTHole)
		if err != nil {
			return nil, fmt.Errorf("boolean operation produced an invalid hole: %w", err)
		}
		holes[i] = h
	}
	opts := make([]NewPolyTreeOption[float64], 0, 1)
	if len(holes) > 0 {
		opts = append(opts, WithChildren(holes...))
	}
	t, err := NewPolyTree(contourFromSweep(poly.Border), PTSolid, opts...)
	if err != nil {
		return nil, fmt.Errorf("boolean operation produced an invalid polygon: %w", err)
	}
	return t, nil
}

func contourFromSweep(c sweep.Contour) []Point[float64] {
	pts := make([]Point[float64], len(c))
	for i, p := range c {
		pts[i] = NewPoint(p.X(), p.Y())
	}
	return pts
}

func toSweepOperands(operands []*PolyTree[float64]) []sweep.Multipolygon {
	out := make([]sweep.Multipolygon, len(operands))
	for i, op := range operands {
		out[i] = ToMultipolygon(op)
	}
	return out
}

// Unite computes the set union of operands using the event-driven sweep in
// package sweep, bridging through [ToMultipolygon]/[FromMultipolygon].
//
// accurate asks the sweep to run operands through its exact-arithmetic
// coercion seam before sweeping; see sweep.Coercer.
func Unite(accurate bool, operands ...*PolyTree[float64]) (*PolyTree[float64], error) {
	result, err := sweep.ComputeMultipolygon(types.BooleanOpUnion, accurate, toSweepOperands(operands)...)
	if err != nil {
		return nil, err
	}
	return FromMultipolygon(result)
}

// Intersect computes the set intersection of a and b.
func Intersect(accurate bool, a, b *PolyTree[float64]) (*PolyTree[float64], error) {
	result, err := sweep.ComputeMultipolygon(types.BooleanOpIntersection, accurate, ToMultipolygon(a), ToMultipolygon(b))
	if err != nil {
		return nil, err
	}
	return FromMultipolygon(result)
}

// Subtract computes a minus b.
func Subtract(accurate bool, a, b *PolyTree[float64]) (*PolyTree[float64], error) {
	result, err := sweep.ComputeMultipolygon(types.BooleanOpDifference, accurate, ToMultipolygon(a), ToMultipolygon(b))
	if err != nil {
		return nil, err
	}
	return FromMultipolygon(result)
}

// SymmetricSubtract computes the symmetric difference of a and b: their
// union minus their intersection.
func SymmetricSubtract(accurate bool, a, b *PolyTree[float64]) (*PolyTree[float64], error) {
	result, err := sweep.ComputeMultipolygon(types.BooleanOpSymmetricDifference, accurate, ToMultipolygon(a), ToMultipolygon(b))
	if err != nil {
		return nil, err
	}
	return FromMultipolygon(result)
}

// CompleteIntersect computes the intersection of a and b along with the
// isolated touching points and overlapping-but-non-crossing segment
// remnants an ordinary intersection would discard.
func CompleteIntersect(accurate bool, a, b *PolyTree[float64]) (sweep.Mix, error) {
	return sweep.CompleteIntersect(accurate, ToMultipolygon(a), ToMultipolygon(b))
}
