// SPDX-License-Identifier: EPL-2.0

// Package align shifts one signal by a lag so it lines up with another.
//
// Two strategies are provided:
//
//   - Skip drops the first lag samples and never pads. It expects a
//     non-negative lag and leaves the caller to cut the other signal down to
//     the shorter length, which Pair does.
//   - Shift delays (positive lag) or advances (negative lag) a signal and
//     zero-pads or truncates it to an exact target length. It accepts any
//     lag and any input length.
//
// Neither function modifies its input.
package align
