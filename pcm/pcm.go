// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/lectorx/internal/fileutil"
	"github.com/ik5/lectorx/signal"
)

const chunkSize = 8192 // samples per Write call

// FromBytes decodes little-endian int16 samples.
func FromBytes(data []byte) (signal.Signal, error) {
	if len(data)%2 != 0 {
		return nil, &FormatError{Size: int64(len(data)), Err: ErrOddByteCount}
	}

	out := make(signal.Signal, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	return out, nil
}

// Decode reads r to the end and decodes it as mono PCM.
func Decode(r io.Reader) (signal.Signal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return FromBytes(data)
}

// Encode writes s as little-endian int16 samples.
func Encode(w io.Writer, s signal.Signal) error {
	if len(s) == 0 {
		return nil
	}

	buf := make([]byte, min(len(s), chunkSize)*2)

	for i := 0; i < len(s); i += chunkSize {
		chunk := s[i:min(i+chunkSize, len(s))]
		out := buf[:len(chunk)*2]

		for j, v := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(v))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Bytes returns the raw encoding of s.
func Bytes(s signal.Signal) []byte {
	out := make([]byte, len(s)*2)
	for i, v := range s {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}

// Load reads a mono PCM file.
func Load(path string) (signal.Signal, error) {
	return LoadChannels(path, 1)
}

// LoadChannels reads a PCM file holding channels interleaved channels and
// returns it as mono. Only 1 and 2 channels are supported.
func LoadChannels(path string, channels int) (signal.Signal, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%s: %d channels: %w", path, channels, ErrUnsupportedChannels)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	s, err := FromBytes(data)
	if err != nil {
		return nil, withPath(err, path)
	}

	if channels == 2 {
		s, err = DownmixStereo(s)
		if err != nil {
			return nil, withPath(err, path)
		}
	}

	return s, nil
}

// Store writes s to path as mono PCM. Either the complete file is written
// or path is left untouched.
func Store(path string, s signal.Signal) error {
	err := fileutil.WriteFile(path, func(f *os.File) error {
		return Encode(f, s)
	})
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// DownmixStereo averages each left/right frame of interleaved stereo data,
// truncating toward zero.
func DownmixStereo(interleaved signal.Signal) (signal.Signal, error) {
	if len(interleaved)%2 != 0 {
		return nil, &FormatError{Size: int64(len(interleaved)) * 2, Err: ErrIncompleteFrame}
	}

	out := make(signal.Signal, len(interleaved)/2)
	for i := range out {
		l := int32(interleaved[2*i])
		r := int32(interleaved[2*i+1])
		out[i] = int16((l + r) / 2)
	}

	return out, nil
}

func withPath(err error, path string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		return &FormatError{Path: path, Size: fe.Size, Err: fe.Err}
	}
	return err
}
