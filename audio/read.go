// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/lectorx/signal"
)

const maxIdleReads = 100

// ReadSignal drains src through a MonoMixer and returns the mono track.
// When wantRate is non-zero a source at any other rate is rejected with
// ErrSampleRateMismatch; tracks are never resampled. src is not closed.
// A source that keeps returning no data without an error fails with
// io.ErrNoProgress.
func ReadSignal(src Source, wantRate int) (signal.Signal, error) {
	if wantRate > 0 && src.SampleRate() != wantRate {
		return nil, fmt.Errorf("got %d Hz, want %d Hz: %w", src.SampleRate(), wantRate, ErrSampleRateMismatch)
	}

	mono := NewMonoMixer(src)

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	out := make(signal.Signal, 0, max(wantRate, bufSize))
	buf := make([]int16, bufSize)
	idle := 0

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if n == 0 && err == nil {
			idle++
			if idle >= maxIdleReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		idle = 0

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
	}
}
