// SPDX-License-Identifier: EPL-2.0

// Package lectorx recovers a voice-over ("lector") track from an original
// recording and a mix of that recording with the voice-over added at an
// unknown offset and gain.
//
// # Pipeline
//
// Extract runs the processing stages on tracks already in memory:
//
//  1. Lag estimation (package lag), by cross-correlation or a fixed value
//  2. Alignment of the original onto the mix (package align)
//  3. Least-squares gain estimation (package mix)
//  4. Recombination into a difference and a half-sum track (package mix)
//
//	original, _ := lectorx.LoadTrack("original.pcm", lectorx.LoadOptions{})
//	mixed, _ := lectorx.LoadTrack("mixed.pcm", lectorx.LoadOptions{})
//
//	res, err := lectorx.Extract(original, mixed, lectorx.DefaultOptions())
//	if err != nil {
//	    var se *lectorx.StageError
//	    if errors.As(err, &se) {
//	        // se.Stage names the failing step
//	    }
//	}
//
//	err = lectorx.WriteOutputs("diff.pcm", "sum.pcm", res, 48000)
//
// # Track Formats
//
// LoadTrack reads headerless little-endian 16-bit PCM by default and
// decodes WAV, AIFF, MP3 and Ogg Vorbis by file extension. Container inputs
// are downmixed to mono and must already be at the expected sample rate;
// nothing is resampled. StoreTrack and WriteOutputs write WAV for a ".wav"
// destination and raw PCM otherwise.
//
// # Output Safety
//
// WriteOutputs stages both outputs next to their destinations and renames
// them into place only after both were written, so a failure leaves neither
// file behind.
package lectorx
