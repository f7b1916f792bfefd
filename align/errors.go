// SPDX-License-Identifier: EPL-2.0

package align

import "errors"

var (
	// ErrNegativeLag is returned by Skip for a lag below zero.
	ErrNegativeLag = errors.New("skip alignment needs a non-negative lag")

	// ErrUnknownStrategy is returned for an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("unknown alignment strategy")
)
