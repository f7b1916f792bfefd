// SPDX-License-Identifier: EPL-2.0

package lag

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/ik5/lectorx/signal"
)

// fftErrorScale bounds the absolute error of an FFT correlation value,
// relative to ||reference|| * ||probe|| * log2(size).
const fftErrorScale = 1e-9

const minFFTSize = 64

func (t *table) scoreFFT(p *progress) error {
	refLen, probeLen := len(t.reference), len(t.probe)
	total := len(t.dots)

	if refLen == 0 || probeLen == 0 {
		// nothing overlaps: every score is an exact zero
		for k := range total {
			t.live[k] = true
		}
		p.advance(total)
		return nil
	}

	size := max(nextPowerOf2(refLen+probeLen-1), minFFTSize)

	xcorr, err := crossCorrelate(t.reference, t.probe, size)
	if err != nil {
		return err
	}

	tol := fftErrorScale*math.Log2(float64(size))*
		math.Sqrt(float64(signal.Energy(t.reference)))*
		math.Sqrt(float64(signal.Energy(t.probe))) + 1

	lower := make([]float64, total)
	upper := make([]float64, total)
	floor := math.Inf(-1)

	for k := range total {
		l := t.lagAt(k)
		lo, hi := overlap(refLen, probeLen, l)

		switch {
		case hi <= lo:
			t.live[k] = true
		case t.scoring == ScoreNormalized && t.norm(l) == 0:
			t.live[k] = true
		default:
			idx := l
			if idx < 0 {
				idx += size
			}
			approx := real(xcorr[idx])

			div := 1.0
			if t.scoring == ScoreNormalized {
				div = t.norm(l)
			}
			lower[k] = (approx - tol) / div
			upper[k] = (approx + tol) / div
		}

		// live entries here hold an exact zero
		if t.live[k] {
			lower[k], upper[k] = 0, 0
		}

		floor = max(floor, lower[k])
	}

	for k := range total {
		if !t.live[k] && upper[k] >= floor {
			t.fill(k)
		}
	}

	p.advance(total)

	return nil
}

// crossCorrelate returns x with x[l] = sum_i reference[i]*probe[i+l] for
// l >= 0 and x[size+l] for l < 0.
func crossCorrelate(reference, probe signal.Signal, size int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("lag: failed to create FFT plan: %w", err)
	}

	refFreq, err := forward(plan, reference, size)
	if err != nil {
		return nil, err
	}

	probeFreq, err := forward(plan, probe, size)
	if err != nil {
		return nil, err
	}

	// conj(REF) * PROBE
	for i, r := range refFreq {
		refFreq[i] = complex(real(r), -imag(r)) * probeFreq[i]
	}

	out := make([]complex128, size)
	if err := plan.Inverse(out, refFreq); err != nil {
		return nil, fmt.Errorf("lag: inverse FFT failed: %w", err)
	}

	return out, nil
}

func forward(plan *algofft.Plan[complex128], s signal.Signal, size int) ([]complex128, error) {
	padded := make([]complex128, size)
	for i, v := range s {
		padded[i] = complex(float64(v), 0)
	}

	freq := make([]complex128, size)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("lag: forward FFT failed: %w", err)
	}

	return freq, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
