// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// Any channel count and sample rate are accepted. Chunks other than fmt and
// data are skipped. Inputs that cannot seek are buffered in memory first.
//
// # Encoding
//
// WriteWAV16 writes a mono 16-bit file. The RIFF and data sizes are patched
// in when the write completes, so the destination must be seekable (an
// *os.File is):
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, samples)
//
// # Errors
//
//   - ErrNotWavFile: The input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: The stream is not 16-bit integer PCM
//   - ErrUnsupportedWavLayout: The fmt chunk describes no channels
//   - ErrUnsupportedWavChunks: No data chunk follows the header
package wav
