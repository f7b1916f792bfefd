// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit little-endian PCM, so
// every Source from this package reports two channels. Mono files come out
// with both channels equal.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// A read that ends in the middle of a sample keeps the odd byte for the
// next call, so no sample is ever split or dropped.
package mp3
