// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math/rand/v2"

	"github.com/ik5/lectorx/signal"
)

// Noise returns deterministic white noise of n samples in [-amp, amp].
func Noise(n int, seed uint64, amp int) signal.Signal {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := make(signal.Signal, n)
	for i := range s {
		s[i] = int16(r.IntN(2*amp+1) - amp)
	}
	return s
}

// Delay returns s delayed by l samples (advanced when l is negative),
// zero padded and cut to the length of s.
func Delay(s signal.Signal, l int) signal.Signal {
	out := make(signal.Signal, len(s))
	for j := range out {
		if i := j - l; i >= 0 && i < len(s) {
			out[j] = s[i]
		}
	}
	return out
}

// Scale multiplies every sample by num/den using integer arithmetic.
func Scale(s signal.Signal, num, den int) signal.Signal {
	out := make(signal.Signal, len(s))
	for i, v := range s {
		out[i] = int16(int(v) * num / den)
	}
	return out
}

// Add sums two signals sample by sample over the shorter length. The caller
// keeps the values small enough not to overflow.
func Add(a, b signal.Signal) signal.Signal {
	out := make(signal.Signal, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
