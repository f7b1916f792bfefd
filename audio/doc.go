// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding plumbing between container formats
// and mono int16 tracks.
//
// This package contains:
//   - Source interface for audio input
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//   - ReadSignal to drain a Source into a signal.Signal
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders in the formats tree implement this interface. Samples are
// interleaved signed 16-bit values, the same representation the extraction
// pipeline works on, so no float conversion happens between decoding and
// correlation.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging in int32
// and truncating toward zero:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]int16, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Rates
//
// Tracks are never resampled. ReadSignal rejects a source whose rate differs
// from the expected one with ErrSampleRateMismatch.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
