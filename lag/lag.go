// SPDX-License-Identifier: EPL-2.0

package lag

import (
	"fmt"

	"github.com/ik5/lectorx/signal"
)

// Strategy yields the lag used to align reference onto probe.
type Strategy interface {
	Lag(reference, probe signal.Signal) (int, error)
}

// Estimate returns the lag in [-maxLag, +maxLag] with the strictly greatest
// raw cross-correlation. A negative maxLag is treated as zero.
func Estimate(reference, probe signal.Signal, maxLag int) int {
	maxLag = max(maxLag, 0)

	bestLag := -maxLag
	bestCorr := correlate(reference, probe, bestLag)

	for l := -maxLag + 1; l <= maxLag; l++ {
		corr := correlate(reference, probe, l)
		if corr > bestCorr {
			bestCorr = corr
			bestLag = l
		}
	}

	return bestLag
}

// Fixed is a Strategy that returns a known lag without looking at the
// signals.
type Fixed struct {
	Value  int
	MaxLag int
}

// Lag returns f.Value, or ErrOutOfWindow when it falls outside
// [-f.MaxLag, +f.MaxLag].
func (f Fixed) Lag(_, _ signal.Signal) (int, error) {
	if f.MaxLag < 0 {
		return 0, ErrNegativeWindow
	}
	if f.Value < -f.MaxLag || f.Value > f.MaxLag {
		return 0, fmt.Errorf("fixed lag %d, window %d: %w", f.Value, f.MaxLag, ErrOutOfWindow)
	}
	return f.Value, nil
}

// Millis converts a lag in samples to milliseconds at rate Hz.
func Millis(lag, rate int) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(lag) * 1000.0 / float64(rate)
}

// overlap returns the reference index range [lo, hi) that pairs with a valid
// probe index for lag l. hi <= lo means the signals do not overlap.
func overlap(refLen, probeLen, l int) (lo, hi int) {
	lo = max(0, -l)
	hi = min(refLen, probeLen-l)
	return lo, hi
}

// correlate computes the exact raw score for a single lag.
func correlate(reference, probe signal.Signal, l int) int64 {
	lo, hi := overlap(len(reference), len(probe), l)

	var sum int64
	for i := lo; i < hi; i++ {
		sum += int64(reference[i]) * int64(probe[i+l])
	}

	return sum
}
