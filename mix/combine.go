// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"strings"

	"github.com/ik5/lectorx/signal"
	"github.com/ik5/lectorx/utils"
)

// Op names a sample-wise combination.
type Op int

const (
	// OpDifference is (c >> 1) - (a >> 1).
	OpDifference Op = iota
	// OpSum is (a >> 1) + (c >> 1).
	OpSum
	// OpCompensatedDifference is c - alpha*a, rounded and saturated.
	OpCompensatedDifference
)

func (op Op) String() string {
	switch op {
	case OpDifference:
		return "difference"
	case OpSum:
		return "sum"
	case OpCompensatedDifference:
		return "compensated-difference"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Policy selects the difference operation used to isolate the voice-over.
type Policy int

const (
	// PolicyHalving ignores the gain and uses OpDifference.
	PolicyHalving Policy = iota
	// PolicyCompensated uses OpCompensatedDifference with the estimated gain.
	PolicyCompensated
)

func (p Policy) String() string {
	switch p {
	case PolicyHalving:
		return "halving"
	case PolicyCompensated:
		return "compensated"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// DifferenceOp returns the Op the policy isolates the voice-over with.
func (p Policy) DifferenceOp() (Op, error) {
	switch p {
	case PolicyHalving:
		return OpDifference, nil
	case PolicyCompensated:
		return OpCompensatedDifference, nil
	default:
		return 0, fmt.Errorf("%v: %w", p, ErrUnknownPolicy)
	}
}

// ParsePolicy maps "halving" or "compensated" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "halving", "half", "":
		return PolicyHalving, nil
	case "compensated", "gain":
		return PolicyCompensated, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}

// Difference returns (c[i] >> 1) - (a[i] >> 1).
func Difference(a, c signal.Signal) (signal.Signal, error) {
	return apply(a, c, func(x, y int16) int16 { return y>>1 - x>>1 })
}

// Sum returns (a[i] >> 1) + (c[i] >> 1).
func Sum(a, c signal.Signal) (signal.Signal, error) {
	return apply(a, c, func(x, y int16) int16 { return x>>1 + y>>1 })
}

// CompensatedDifference returns c[i] - alpha*a[i], rounded half away from
// zero and saturated to the int16 range.
func CompensatedDifference(a, c signal.Signal, alpha float64) (signal.Signal, error) {
	return apply(a, c, func(x, y int16) int16 {
		return utils.ClampInt16(float64(y) - alpha*float64(x))
	})
}

// Combine applies op to a and c. alpha is only used by
// OpCompensatedDifference.
func Combine(a, c signal.Signal, op Op, alpha float64) (signal.Signal, error) {
	switch op {
	case OpDifference:
		return Difference(a, c)
	case OpSum:
		return Sum(a, c)
	case OpCompensatedDifference:
		return CompensatedDifference(a, c, alpha)
	default:
		return nil, fmt.Errorf("%v: %w", op, ErrUnknownOp)
	}
}

func apply(a, c signal.Signal, fn func(x, y int16) int16) (signal.Signal, error) {
	if len(a) != len(c) {
		return nil, fmt.Errorf("combine %d and %d samples: %w", len(a), len(c), signal.ErrLengthMismatch)
	}

	out := make(signal.Signal, len(a))
	for i := range a {
		out[i] = fn(a[i], c[i])
	}

	return out, nil
}
