// SPDX-License-Identifier: EPL-2.0

package lag

import "errors"

var (
	// ErrNegativeWindow is returned when the search window is below zero.
	ErrNegativeWindow = errors.New("lag window must not be negative")

	// ErrOutOfWindow is returned when a fixed lag lies outside the window.
	ErrOutOfWindow = errors.New("lag outside search window")

	// ErrUnknownScoring is returned for an unsupported Scoring value.
	ErrUnknownScoring = errors.New("unknown lag scoring")

	// ErrUnknownMethod is returned for an unsupported Method value.
	ErrUnknownMethod = errors.New("unknown lag method")
)
