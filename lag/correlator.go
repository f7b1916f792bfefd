// SPDX-License-Identifier: EPL-2.0

package lag

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ik5/lectorx/signal"
)

// Scoring selects how a candidate lag is scored.
type Scoring int

const (
	// ScoreRaw scores a lag by the plain cross-correlation sum.
	ScoreRaw Scoring = iota
	// ScoreNormalized divides the sum by the square root of the product of
	// both overlap energies, giving a coefficient in [-1, 1]. A lag whose
	// overlap is silent on either side scores 0.
	ScoreNormalized
)

func (s Scoring) String() string {
	switch s {
	case ScoreRaw:
		return "raw"
	case ScoreNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("Scoring(%d)", int(s))
	}
}

// ParseScoring maps "raw" or "normalized" to a Scoring.
func ParseScoring(name string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "":
		return ScoreRaw, nil
	case "normalized", "normalised":
		return ScoreNormalized, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownScoring)
	}
}

// Method selects how the scores are computed.
type Method int

const (
	// MethodDirect evaluates every candidate with an accumulation loop.
	MethodDirect Method = iota
	// MethodFFT bounds every score with one FFT cross-correlation and then
	// rescores exactly the lags that can still win.
	MethodFFT
)

func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "direct" or "fft" to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct", "":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}

// Result is the outcome of a lag search.
type Result struct {
	// Lag is the selected offset in samples.
	Lag int
	// Score is the winning score under the Correlator's Scoring.
	Score float64
	// Candidates is the size of the search space, 2*MaxLag+1.
	Candidates int
	// Evaluated counts the candidates that were scored exactly.
	Evaluated int
}

// Correlator searches [-MaxLag, +MaxLag] for the best-scoring lag.
// The zero value is a direct raw search with a zero window.
type Correlator struct {
	MaxLag  int
	Scoring Scoring
	Method  Method

	// Workers > 1 spreads direct scoring over that many goroutines.
	Workers int

	// Progress, when set, is called with the number of finished candidates
	// and the total. Calls are serialized.
	Progress func(done, total int)
}

// Lag implements Strategy.
func (c Correlator) Lag(reference, probe signal.Signal) (int, error) {
	res, err := c.Estimate(reference, probe)
	if err != nil {
		return 0, err
	}
	return res.Lag, nil
}

// Estimate runs the search and returns the winning lag with its score.
func (c Correlator) Estimate(reference, probe signal.Signal) (Result, error) {
	if c.MaxLag < 0 {
		return Result{}, ErrNegativeWindow
	}

	switch c.Scoring {
	case ScoreRaw, ScoreNormalized:
	default:
		return Result{}, fmt.Errorf("%v: %w", c.Scoring, ErrUnknownScoring)
	}

	t := newTable(reference, probe, c.MaxLag, c.Scoring)
	p := newProgress(c.Progress, len(t.dots))

	switch c.Method {
	case MethodDirect:
		t.scoreDirect(c.Workers, p)
	case MethodFFT:
		if err := t.scoreFFT(p); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("%v: %w", c.Method, ErrUnknownMethod)
	}

	best := t.best()

	return Result{
		Lag:        t.lagAt(best),
		Score:      t.score(best),
		Candidates: len(t.dots),
		Evaluated:  t.evaluated(),
	}, nil
}

// table holds one score slot per candidate lag, indexed by lag+maxLag.
type table struct {
	reference signal.Signal
	probe     signal.Signal
	maxLag    int
	scoring   Scoring

	dots []int64
	live []bool

	// prefix sums of squared samples, only for ScoreNormalized
	refEnergy   []int64
	probeEnergy []int64
}

func newTable(reference, probe signal.Signal, maxLag int, scoring Scoring) *table {
	t := &table{
		reference: reference,
		probe:     probe,
		maxLag:    maxLag,
		scoring:   scoring,
		dots:      make([]int64, 2*maxLag+1),
		live:      make([]bool, 2*maxLag+1),
	}

	if scoring == ScoreNormalized {
		t.refEnergy = prefixEnergy(reference)
		t.probeEnergy = prefixEnergy(probe)
	}

	return t
}

func prefixEnergy(s signal.Signal) []int64 {
	out := make([]int64, len(s)+1)
	for i, v := range s {
		x := int64(v)
		out[i+1] = out[i] + x*x
	}
	return out
}

func (t *table) lagAt(k int) int { return k - t.maxLag }

// fill scores candidate k exactly.
func (t *table) fill(k int) {
	t.dots[k] = correlate(t.reference, t.probe, t.lagAt(k))
	t.live[k] = true
}

// norm returns the normalization divisor for lag l, or 0 for a silent or
// empty overlap.
func (t *table) norm(l int) float64 {
	lo, hi := overlap(len(t.reference), len(t.probe), l)
	if hi <= lo {
		return 0
	}

	er := t.refEnergy[hi] - t.refEnergy[lo]
	ep := t.probeEnergy[hi+l] - t.probeEnergy[lo+l]
	if er == 0 || ep == 0 {
		return 0
	}

	return math.Sqrt(float64(er)) * math.Sqrt(float64(ep))
}

func (t *table) score(k int) float64 {
	if t.scoring == ScoreRaw {
		return float64(t.dots[k])
	}

	n := t.norm(t.lagAt(k))
	if n == 0 {
		return 0
	}
	return float64(t.dots[k]) / n
}

// better reports whether candidate k strictly beats candidate best.
func (t *table) better(k, best int) bool {
	if t.scoring == ScoreRaw {
		return t.dots[k] > t.dots[best]
	}
	return t.score(k) > t.score(best)
}

// best scans live candidates in lag order; the first of equal scores wins.
func (t *table) best() int {
	best := -1
	for k := range t.dots {
		if !t.live[k] {
			continue
		}
		if best < 0 || t.better(k, best) {
			best = k
		}
	}
	return best
}

func (t *table) evaluated() int {
	n := 0
	for _, ok := range t.live {
		if ok {
			n++
		}
	}
	return n
}

func (t *table) scoreDirect(workers int, p *progress) {
	total := len(t.dots)
	workers = min(max(workers, 1), total)

	if workers == 1 {
		for k := range total {
			t.fill(k)
			p.step()
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for {
				k := int(next.Add(1) - 1)
				if k >= total {
					return
				}
				t.fill(k)
				p.step()
			}
		})
	}

	wg.Wait()
}

type progress struct {
	mu    sync.Mutex
	fn    func(done, total int)
	done  int
	total int
}

func newProgress(fn func(done, total int), total int) *progress {
	return &progress{fn: fn, total: total}
}

func (p *progress) step() { p.advance(1) }

func (p *progress) advance(n int) {
	if p.fn == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.done = min(p.done+n, p.total)
	p.fn(p.done, p.total)
}
