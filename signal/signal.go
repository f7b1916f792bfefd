// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"slices"
)

// DefaultSampleRate is the rate, in Hz, of the tracks this module handles.
const DefaultSampleRate = 48000

// Sample is a single signed 16-bit PCM value.
type Sample = int16

// Signal is a single-channel sequence of samples at a fixed rate.
type Signal []Sample

// Len returns the number of samples.
func (s Signal) Len() int { return len(s) }

// Clone returns a copy that shares no memory with s.
// A nil signal clones to an empty, non-nil one.
func (s Signal) Clone() Signal {
	out := make(Signal, len(s))
	copy(out, s)
	return out
}

// Truncate returns a copy of the first n samples. n larger than the signal
// yields a full copy; n below zero yields an empty signal.
func (s Signal) Truncate(n int) Signal {
	n = max(0, min(n, len(s)))
	out := make(Signal, n)
	copy(out, s[:n])
	return out
}

// Duration returns the signal length in seconds at rate Hz.
func (s Signal) Duration(rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(len(s)) / float64(rate)
}

// Energy returns the sum of squared samples.
func Energy(s Signal) int64 {
	var sum int64
	for _, v := range s {
		x := int64(v)
		sum += x * x
	}
	return sum
}

// Dot returns the inner product of two equal-length signals.
func Dot(a, c Signal) (int64, error) {
	if len(a) != len(c) {
		return 0, fmt.Errorf("dot product of %d and %d samples: %w", len(a), len(c), ErrLengthMismatch)
	}

	var sum int64
	for i := range a {
		sum += int64(a[i]) * int64(c[i])
	}

	return sum, nil
}

// Equal reports whether two signals hold the same samples.
func Equal(a, c Signal) bool {
	return slices.Equal(a, c)
}
