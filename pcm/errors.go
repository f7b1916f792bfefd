// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
)

var (
	// ErrOddByteCount indicates a stream that ends in an incomplete sample.
	ErrOddByteCount = errors.New("odd byte count, trailing incomplete sample")

	// ErrIncompleteFrame indicates interleaved stereo data with an odd
	// number of samples.
	ErrIncompleteFrame = errors.New("interleaved data ends in an incomplete frame")

	// ErrUnsupportedChannels indicates a channel count other than 1 or 2.
	ErrUnsupportedChannels = errors.New("only mono and stereo PCM are supported")
)

// IOError reports a failure to open, read or write a PCM file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pcm %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pcm %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports PCM data that cannot be decoded.
type FormatError struct {
	Path string
	Size int64
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pcm format (%d bytes): %v", e.Size, e.Err)
	}
	return fmt.Sprintf("pcm format %s (%d bytes): %v", e.Path, e.Size, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
