//go:build !debug

package geom2d

// logDebugf is a no-op outside debug builds; see log_debug.go for the
// enabled variant.
func logDebugf(format string, v ...interface{}) {}
