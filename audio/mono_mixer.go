// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of each frame into a single sample. The
// average is computed in int32 and truncated toward zero, so a stereo frame
// (l, r) becomes (l+r)/2.
type MonoMixer struct {
	src Source
	tmp []int16
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int16, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	switch {
	case channels < 1:
		return 0, ErrInvalidChannels
	case channels == 1:
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// grow but never shrink the scratch buffer
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]int16, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if channels == 2 {
		for f := range frames {
			idx := f << 1
			dst[f] = int16((int32(m.tmp[idx]) + int32(m.tmp[idx+1])) / 2)
		}
		return frames, err
	}

	div := int32(channels)
	for f := range frames {
		var sum int32
		base := f * channels
		for c := range channels {
			sum += int32(m.tmp[base+c])
		}
		dst[f] = int16(sum / div)
	}

	return frames, err
}
