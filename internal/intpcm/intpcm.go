// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio decoders that fill IntBuffers to the
// audio.Source interface.
package intpcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/lectorx/audio"
)

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source wraps a 16-bit Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

// NewSource returns a Source for dec. The caller has already checked that
// the stream is 16-bit PCM.
func NewSource(dec Reader, sampleRate, channels int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = int16(v)
	}

	// go-audio reports the end of data as a short read with no error
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Seekable returns r itself when it can seek, otherwise an in-memory copy of
// everything r holds. go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

var _ audio.Source = (*Source)(nil)
