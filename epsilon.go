package geom2d

import "github.com/mikenye/geom2d/options"

// GetEpsilon returns the package-wide default epsilon tolerance used by
// geometry methods that do not take per-call options. Kept as a thin
// forward to options.GetEpsilon so existing callers of geom2d.GetEpsilon
// keep working; the value itself lives in package options, which point,
// linesegment, and circle import directly to avoid a dependency back on
// this root package.
func GetEpsilon() float64 {
	return options.GetEpsilon()
}

// SetEpsilon sets the package-wide default epsilon tolerance. A negative
// value is clamped to zero, matching options.WithEpsilon's behavior.
func SetEpsilon(epsilon float64) {
	options.SetEpsilon(epsilon)
}
