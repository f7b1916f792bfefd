// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to int16 using the
// same 32768 scale the decoders divide by, so decoded 16-bit data converts
// back to its original value. Out-of-range input saturates.
func Float32ToInt16(x float32) int16 {
	return ClampInt16(float64(x) * 32768.0)
}

// ClampInt16 rounds x half away from zero and saturates it to the int16
// range. NaN maps to 0.
func ClampInt16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt16:
		return math.MaxInt16
	case x <= math.MinInt16:
		return math.MinInt16
	}
	return int16(math.Round(x))
}
