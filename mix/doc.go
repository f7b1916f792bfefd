// SPDX-License-Identifier: EPL-2.0

// Package mix estimates the gain between two aligned signals and combines
// them sample by sample.
//
// The halving operations shift each input right by one bit before adding or
// subtracting, so the int16 result can never overflow:
//
//	Difference: (c >> 1) - (a >> 1)
//	Sum:        (a >> 1) + (c >> 1)
//
// Adding both outputs gives 2*(c>>1), which differs from c by at most one.
//
// CompensatedDifference subtracts the reference scaled by the least-squares
// gain and saturates to the int16 range instead.
//
// Every operation requires inputs of equal length and returns
// signal.ErrLengthMismatch otherwise. Align the inputs first.
package mix
