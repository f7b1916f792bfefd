// SPDX-License-Identifier: EPL-2.0

package lectorx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/lectorx/audio"
	"github.com/ik5/lectorx/formats/aiff"
	"github.com/ik5/lectorx/formats/mp3"
	"github.com/ik5/lectorx/formats/vorbis"
	"github.com/ik5/lectorx/formats/wav"
	"github.com/ik5/lectorx/internal/fileutil"
	"github.com/ik5/lectorx/pcm"
	"github.com/ik5/lectorx/signal"
)

// DefaultRegistry returns a registry with every container decoder this
// module ships.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// LoadOptions controls how LoadTrack interprets a file.
type LoadOptions struct {
	// Rate is the sample rate container inputs must have. Zero accepts any.
	Rate int
	// Channels is the interleaved channel count of raw PCM inputs, 1 or 2.
	// Zero means 1. Containers describe their own layout.
	Channels int
	// Registry maps extensions to decoders. Nil uses DefaultRegistry.
	Registry *audio.Registry
}

// LoadTrack reads path as a mono track. Files whose extension has a
// registered decoder are decoded and downmixed; anything else is raw PCM.
func LoadTrack(path string, opts LoadOptions) (signal.Signal, error) {
	s, err := loadTrack(path, opts)
	return s, stageErr(StageLoad, err)
}

func loadTrack(path string, opts LoadOptions) (signal.Signal, error) {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.Get(extension(path))
	if !ok {
		channels := opts.Channels
		if channels == 0 {
			channels = 1
		}
		return pcm.LoadChannels(path, channels)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &pcm.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	s, err := audio.ReadSignal(src, opts.Rate)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return s, nil
}

// StoreTrack writes s to path, as a mono 16-bit WAV at rate Hz when path
// ends in ".wav" and as raw PCM otherwise. The file is written completely
// or not at all.
func StoreTrack(path string, s signal.Signal, rate int) error {
	err := fileutil.WriteFile(path, encoder(path, s, rate))
	if err != nil {
		return stageErr(StageStore, &pcm.IOError{Op: "write", Path: path, Err: err})
	}
	return nil
}

// WriteOutputs stores the difference and sum tracks of res. Both files are
// staged first and published together; on any failure neither exists.
func WriteOutputs(diffPath, sumPath string, res *Result, rate int) error {
	var b fileutil.Batch

	for _, out := range []struct {
		path string
		s    signal.Signal
	}{
		{diffPath, res.Diff},
		{sumPath, res.Sum},
	} {
		if err := b.Stage(out.path, encoder(out.path, out.s, rate)); err != nil {
			return stageErr(StageStore, &pcm.IOError{Op: "write", Path: out.path, Err: err})
		}
	}

	if err := b.Commit(); err != nil {
		return stageErr(StageStore, &pcm.IOError{Op: "rename", Err: err})
	}

	return nil
}

func encoder(path string, s signal.Signal, rate int) fileutil.WriteFunc {
	if extension(path) == "wav" {
		return func(f *os.File) error {
			return wav.WriteWAV16(f, rate, s)
		}
	}
	return func(f *os.File) error {
		return pcm.Encode(f, s)
	}
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
