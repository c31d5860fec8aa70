// Package cuosd rasterizes on-screen-display primitives — rectangles,
// circles, text, segmentation masks, and image stamps — onto a destination
// video surface, plus a box-blur redaction pass, as a single data-parallel
// launch over pre-built command buffers.
//
// # Architecture
//
// The library is organized into:
//   - plane: the destination surface abstraction (RGB, RGBA, block-linear
//     and pitch-linear NV12)
//   - command: the wire format for one launch (tagged command records, an
//     Encoder to build them, auxiliary text/blur arrays)
//   - internal/coverage: per-primitive coverage evaluators
//   - internal/blend: fixed-point source-over compositing shared by every
//     evaluator and by the final surface commit
//   - kernel: the composite and box-blur passes, parallelized across
//     destination quads
//   - dispatch: the public entry point, Launch, and its format/rotation
//     specialization table
//
// # Coordinate system
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left, x
// increases right, y increases down. All coordinates passed to Launch are
// in destination-surface pixel space.
package cuosd
