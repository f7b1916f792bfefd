// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels    = errors.New("source reports no channels")
	ErrSampleRateMismatch = errors.New("source sample rate differs from the expected rate")
	ErrUnsupportedFormat  = errors.New("no decoder registered for format")
)
