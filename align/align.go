// SPDX-License-Identifier: EPL-2.0

package align

import (
	"fmt"
	"strings"

	"github.com/ik5/lectorx/signal"
)

// Skip returns s without its first lag samples. A lag at or beyond the end
// of s yields an empty signal.
func Skip(s signal.Signal, lag int) (signal.Signal, error) {
	if lag < 0 {
		return nil, fmt.Errorf("skip %d samples: %w", lag, ErrNegativeLag)
	}
	if lag >= len(s) {
		return signal.Signal{}, nil
	}
	return s[lag:].Clone(), nil
}

// Shift returns exactly targetLen samples of s moved by lag. A positive lag
// inserts that many zeros in front; a negative lag drops |lag| leading
// samples. Gaps at the end are filled with silence.
func Shift(s signal.Signal, lag, targetLen int) signal.Signal {
	targetLen = max(targetLen, 0)
	out := make(signal.Signal, targetLen)

	if lag > 0 {
		if lag < targetLen {
			copy(out[lag:], s)
		}
		return out
	}

	start := min(-lag, len(s))
	copy(out, s[start:])

	return out
}

// Strategy selects how Pair aligns the reference onto the probe.
type Strategy int

const (
	// StrategySkip drops the first lag reference samples and truncates
	// both signals to the shorter length.
	StrategySkip Strategy = iota
	// StrategyShift moves the reference by lag to the probe's length.
	StrategyShift
)

func (s Strategy) String() string {
	switch s {
	case StrategySkip:
		return "skip"
	case StrategyShift:
		return "shift"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "skip" or "shift" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "skip", "":
		return StrategySkip, nil
	case "shift", "pad":
		return StrategyShift, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Pair aligns reference onto probe and returns two signals of equal length:
// the aligned reference a and the matching probe section c.
func Pair(reference, probe signal.Signal, lag int, strategy Strategy) (a, c signal.Signal, err error) {
	switch strategy {
	case StrategySkip:
		a, err = Skip(reference, lag)
		if err != nil {
			return nil, nil, err
		}
		n := min(len(a), len(probe))
		return a[:n], probe.Truncate(n), nil
	case StrategyShift:
		return Shift(reference, lag, len(probe)), probe.Clone(), nil
	default:
		return nil, nil, fmt.Errorf("%v: %w", strategy, ErrUnknownStrategy)
	}
}
