// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	// ErrDegenerateSignal is returned when the reference has no energy and
	// the gain is undefined.
	ErrDegenerateSignal = errors.New("reference signal has zero energy")

	// ErrUnknownOp is returned for an unsupported Op value.
	ErrUnknownOp = errors.New("unknown combine operation")

	// ErrUnknownPolicy is returned for an unsupported Policy value.
	ErrUnknownPolicy = errors.New("unknown difference policy")
)
