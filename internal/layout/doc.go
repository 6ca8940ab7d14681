// Package layout partitions a configured tree of panes and splits into
// screen rectangles.
//
// The tree is walked with an explicit stack, so configured nesting depth does
// not grow the goroutine stack. Geometry is computed by Partition, a pure
// function of the constraints and the available extent. The package never
// draws anything; callers receive rectangles through callbacks.
package layout
