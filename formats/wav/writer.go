// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/lectorx/signal"
)

const chunkSize = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The header sizes
// are patched in on completion, so w has to be seekable.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples signal.Signal) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), chunkSize)),
		SourceBitDepth: 16,
	}

	// an empty write still emits the header
	if len(samples) == 0 {
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
