// SPDX-License-Identifier: EPL-2.0

package lectorx

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/lectorx/audio"
	"github.com/ik5/lectorx/pcm"
	"github.com/ik5/lectorx/signal"
)

func TestStoreTrack_LoadTrack_RawRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "track.pcm")
	want := signal.Signal{-32768, -1, 0, 1, 32767}

	if err := StoreTrack(path, want, 48000); err != nil {
		t.Fatalf("StoreTrack() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != int64(2*len(want)) {
		t.Errorf("raw file size = %d, want %d", info.Size(), 2*len(want))
	}

	got, err := LoadTrack(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadTrack() error = %v", err)
	}
	checkSignal(t, "LoadTrack()", got, want)
}

func TestStoreTrack_LoadTrack_WAVRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "track.WAV")
	want := signal.Signal{5, -5, 1000, -1000, 0}

	if err := StoreTrack(path, want, 48000); err != nil {
		t.Fatalf("StoreTrack() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:4]) != "RIFF" {
		t.Errorf("StoreTrack() to .WAV wrote %q header, want RIFF", data[:4])
	}

	got, err := LoadTrack(path, LoadOptions{Rate: 48000})
	if err != nil {
		t.Fatalf("LoadTrack() error = %v", err)
	}
	checkSignal(t, "LoadTrack()", got, want)
}

func TestLoadTrack_RateMismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "track.wav")
	if err := StoreTrack(path, signal.Signal{1, 2, 3}, 44100); err != nil {
		t.Fatalf("StoreTrack() error = %v", err)
	}

	_, err := LoadTrack(path, LoadOptions{Rate: 48000})
	if !errors.Is(err, audio.ErrSampleRateMismatch) {
		t.Errorf("LoadTrack() error = %v, want %v", err, audio.ErrSampleRateMismatch)
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageLoad {
		t.Errorf("LoadTrack() error = %v, want load StageError", err)
	}
}

func TestLoadTrack_StereoRaw(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stereo.raw")
	if err := pcm.Store(path, signal.Signal{100, 201, -3, 0}); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTrack(path, LoadOptions{Channels: 2})
	if err != nil {
		t.Fatalf("LoadTrack() error = %v", err)
	}
	checkSignal(t, "LoadTrack()", got, signal.Signal{150, -1})
}

func TestLoadTrack_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	odd := filepath.Join(dir, "odd.pcm")
	if err := os.WriteFile(odd, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTrack(odd, LoadOptions{})
	var fe *pcm.FormatError
	if !errors.As(err, &fe) || !errors.Is(err, pcm.ErrOddByteCount) {
		t.Errorf("LoadTrack(odd) error = %v, want FormatError wrapping %v", err, pcm.ErrOddByteCount)
	}

	_, err = LoadTrack(filepath.Join(dir, "missing.pcm"), LoadOptions{})
	var ioe *pcm.IOError
	if !errors.As(err, &ioe) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadTrack(missing) error = %v, want IOError wrapping %v", err, os.ErrNotExist)
	}

	_, err = LoadTrack(filepath.Join(dir, "missing.wav"), LoadOptions{})
	if !errors.As(err, &ioe) || ioe.Op != "open" {
		t.Errorf("LoadTrack(missing.wav) error = %v, want open IOError", err)
	}

	notWav := filepath.Join(dir, "bogus.wav")
	if err := os.WriteFile(notWav, []byte("definitely not RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTrack(notWav, LoadOptions{}); err == nil {
		t.Error("LoadTrack(bogus.wav) error = nil, want decode error")
	}
}

func TestLoadTrack_CustomRegistry(t *testing.T) {
	t.Parallel()

	// without a decoder for "wav" the file is read as raw PCM
	path := filepath.Join(t.TempDir(), "plain.wav")
	if err := pcm.Store(path, signal.Signal{7, 8}); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTrack(path, LoadOptions{Registry: audio.NewRegistry()})
	if err != nil {
		t.Fatalf("LoadTrack() error = %v", err)
	}
	checkSignal(t, "LoadTrack()", got, signal.Signal{7, 8})
}

func TestDefaultRegistry_Formats(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("DefaultRegistry().Formats() = %v, want %v", got, want)
	}
}

func TestWriteOutputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	diffPath := filepath.Join(dir, "diff.pcm")
	sumPath := filepath.Join(dir, "sum.wav")
	res := &Result{Diff: signal.Signal{-100, -25, -25}, Sum: signal.Signal{100, 275, 375}}

	if err := WriteOutputs(diffPath, sumPath, res, 48000); err != nil {
		t.Fatalf("WriteOutputs() error = %v", err)
	}

	diff, err := LoadTrack(diffPath, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	checkSignal(t, "diff", diff, res.Diff)

	sum, err := LoadTrack(sumPath, LoadOptions{Rate: 48000})
	if err != nil {
		t.Fatal(err)
	}
	checkSignal(t, "sum", sum, res.Sum)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("directory holds %d entries, want 2 (no temp files)", len(entries))
	}
}

func TestWriteOutputs_FailureLeavesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	diffPath := filepath.Join(dir, "diff.pcm")
	sumPath := filepath.Join(dir, "missing", "sum.pcm")
	res := &Result{Diff: signal.Signal{1}, Sum: signal.Signal{2}}

	err := WriteOutputs(diffPath, sumPath, res, 48000)

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageStore {
		t.Fatalf("WriteOutputs() error = %v, want store StageError", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory holds %v after failure, want nothing", entries)
	}
}
