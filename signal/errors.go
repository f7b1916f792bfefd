// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	// ErrLengthMismatch is returned when an operation requires two signals of
	// equal length and receives signals of different lengths.
	ErrLengthMismatch = errors.New("signal length mismatch")
)
