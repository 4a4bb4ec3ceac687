package geom2d

import "github.com/mikenye/geom2d/types"

// SignedNumber constrains the legacy generic geometry types (Point,
// LineSegment, Rectangle, Circle, Polygon, PolyTree) to the same signed
// numeric types the types package defines for the newer non-generic
// packages.
type SignedNumber = types.SignedNumber
