// Package coverage implements the per-primitive coverage evaluators: given a
// command and a destination pixel, how much foreground alpha and color that
// pixel receives. Each evaluator is a pure function of (command, x, y) with
// no shared state, mirroring the reference kernel's per-thread primitive
// dispatch.
//
// Grounded on mask.go's bounds-checked uint8-per-pixel accessor for the
// general shape of "sample this buffer, return 0 outside it", generalized
// to analytic and resampled coverage tests; the point-in-quadrilateral and
// annulus tests themselves are plain geometry with no direct precedent in
// the teacher's path-based analytic_filler.go (which rasterizes arbitrary
// bezier paths, not a fixed four-corner quad or a circle).
package coverage

import "github.com/gogpu/cuosd/internal/blend"

// Sample is one evaluated pixel: the foreground color (straight alpha) that
// a coverage evaluator contributes at a given destination pixel.
type Sample = blend.Color
