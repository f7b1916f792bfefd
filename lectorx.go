// SPDX-License-Identifier: EPL-2.0

package lectorx

import (
	"github.com/ik5/lectorx/align"
	"github.com/ik5/lectorx/lag"
	"github.com/ik5/lectorx/mix"
	"github.com/ik5/lectorx/signal"
)

// DefaultMaxLag is the default alignment window, one second at 48 kHz.
const DefaultMaxLag = signal.DefaultSampleRate

// Options selects the strategy of each pipeline stage.
type Options struct {
	// Lag finds the offset of the mix relative to the original. A nil Lag
	// uses a raw direct Correlator over DefaultMaxLag.
	Lag lag.Strategy

	Align  align.Strategy
	Policy mix.Policy
}

// DefaultOptions returns the configuration of the reference tool: a raw
// correlation search over +/-1 s, truncating skip and halving combination.
func DefaultOptions() Options {
	return Options{
		Lag:    lag.Correlator{MaxLag: DefaultMaxLag},
		Align:  align.StrategySkip,
		Policy: mix.PolicyHalving,
	}
}

// Result holds every intermediate and final product of Extract.
type Result struct {
	// Lag is the offset used for alignment, in samples.
	Lag int
	// Search is set when the lag came from a correlation search.
	Search *lag.Result

	// Alpha is the least-squares gain of C relative to A.
	Alpha float64

	// A and C are the aligned original and mix, of equal length.
	A signal.Signal
	C signal.Signal

	// Diff estimates the voice-over alone; Sum is the half-sum of A and C.
	Diff signal.Signal
	Sum  signal.Signal
}

// LagMillis returns the lag in milliseconds at rate Hz.
func (r *Result) LagMillis(rate int) float64 {
	return lag.Millis(r.Lag, rate)
}

// estimator is implemented by strategies that can report search details.
type estimator interface {
	Estimate(reference, probe signal.Signal) (lag.Result, error)
}

// Extract runs lag estimation, alignment, gain estimation and
// recombination. Inputs are never modified. A failure is returned as a
// *StageError naming the step.
func Extract(original, mixed signal.Signal, opts Options) (*Result, error) {
	if opts.Lag == nil {
		opts.Lag = lag.Correlator{MaxLag: DefaultMaxLag}
	}

	diffOp, err := opts.Policy.DifferenceOp()
	if err != nil {
		return nil, stageErr(StageCombine, err)
	}

	res := &Result{}

	if est, ok := opts.Lag.(estimator); ok {
		search, err := est.Estimate(original, mixed)
		if err != nil {
			return nil, stageErr(StageLag, err)
		}
		res.Lag = search.Lag
		res.Search = &search
	} else {
		res.Lag, err = opts.Lag.Lag(original, mixed)
		if err != nil {
			return nil, stageErr(StageLag, err)
		}
	}

	res.A, res.C, err = align.Pair(original, mixed, res.Lag, opts.Align)
	if err != nil {
		return nil, stageErr(StageAlign, err)
	}

	res.Alpha, err = mix.EstimateGain(res.A, res.C)
	if err != nil {
		return nil, stageErr(StageGain, err)
	}

	res.Diff, err = mix.Combine(res.A, res.C, diffOp, res.Alpha)
	if err != nil {
		return nil, stageErr(StageCombine, err)
	}

	res.Sum, err = mix.Sum(res.A, res.C)
	if err != nil {
		return nil, stageErr(StageCombine, err)
	}

	return res, nil
}
