// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// writeAIFF encodes interleaved samples with the go-audio encoder and
// returns the file contents.
func writeAIFF(t testing.TB, rate, channels, bitDepth int, samples []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := aiff.NewEncoder(f, rate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return data
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []int16{0, 1000, -1000, 32767, -32768, 42}
	ints := make([]int, len(want))
	for i, v := range want {
		ints[i] = int(v)
	}

	// bytes.Buffer is not seekable, so this also covers buffering
	src, err := Decoder{}.Decode(bytes.NewBuffer(writeAIFF(t, 48000, 1, 16, ints)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var got []int16
	buf := make([]int16, 4)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if !slices.Equal(got, want) {
		t.Errorf("decoded samples = %v, want %v", got, want)
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(writeAIFF(t, 44100, 2, 16, []int{1, 2, 3, 4})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
}

func TestDecoder_Rejects24Bit(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(writeAIFF(t, 48000, 1, 24, []int{1, 2, 3, 4})))
	if !errors.Is(err, ErrOnlyPCM16bitSupported) {
		t.Errorf("Decode() error = %v, want %v", err, ErrOnlyPCM16bitSupported)
	}
}

func BenchmarkDecoder_ReadSamples(b *testing.B) {
	ints := make([]int, 48000)
	for i := range ints {
		ints[i] = i % 30000
	}
	data := writeAIFF(b, 48000, 1, 16, ints)
	buf := make([]int16, 4096)

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
