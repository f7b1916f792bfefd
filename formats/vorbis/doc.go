// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float samples. They are scaled by 32768, rounded and
// clamped to the int16 range:
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := source.ReadSamples(buf)
//
// ReadSamples only returns whole frames; a buffer shorter than one frame
// reads nothing.
package vorbis
