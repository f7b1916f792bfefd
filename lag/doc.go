// SPDX-License-Identifier: EPL-2.0

// Package lag estimates the integer sample offset between two signals.
//
// For every candidate lag l in [-maxLag, +maxLag] the score is the
// cross-correlation
//
//	corr(l) = sum_i reference[i] * probe[i+l]
//
// taken over the indices valid in both signals. Pairs that fall outside
// either signal contribute nothing. A positive lag means the reference
// content shows up later in the probe.
//
// Candidates are scanned in increasing lag order and only a strictly greater
// score replaces the current best, so ties resolve to the most negative lag.
// The concurrent and FFT methods of Correlator keep that rule: they only
// change how scores are computed, never the order they are compared in.
//
// # Strategies
//
// A caller that already knows the offset can skip estimation by using Fixed
// instead of a Correlator. Both satisfy Strategy:
//
//	var s lag.Strategy = lag.Correlator{MaxLag: 48000}
//	if manual {
//	    s = lag.Fixed{Value: 10055, MaxLag: 48000}
//	}
//	l, err := s.Lag(original, mixed)
package lag
