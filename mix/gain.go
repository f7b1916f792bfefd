// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"

	"github.com/ik5/lectorx/signal"
)

// EstimateGain returns the least-squares gain alpha = (a.c)/(a.a) relating
// the aligned reference a to c.
func EstimateGain(a, c signal.Signal) (float64, error) {
	ac, err := signal.Dot(a, c)
	if err != nil {
		return 0, fmt.Errorf("estimate gain: %w", err)
	}

	aa := signal.Energy(a)
	if aa == 0 {
		return 0, fmt.Errorf("estimate gain over %d samples: %w", len(a), ErrDegenerateSignal)
	}

	return float64(ac) / float64(aa), nil
}
