// SPDX-License-Identifier: EPL-2.0

// Package pcm reads and writes headerless 16-bit little-endian PCM.
//
// A raw PCM file is nothing but consecutive two-byte samples: no header, no
// chunking and, for the files the extractor works on, a single channel. A
// file with an odd number of bytes ends in half a sample and is rejected
// with a *FormatError instead of silently losing that byte.
//
//	s, err := pcm.Load("original.pcm")
//	if err != nil {
//	    var fe *pcm.FormatError
//	    if errors.As(err, &fe) {
//	        // truncated file
//	    }
//	}
//
// Store writes through a temporary file, so a failed write never leaves a
// truncated output behind.
//
// Interleaved stereo input can be reduced to mono with DownmixStereo or by
// loading it with LoadChannels(path, 2). Each frame becomes the average of
// its two samples, truncated toward zero.
package pcm
