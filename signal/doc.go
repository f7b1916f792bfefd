// SPDX-License-Identifier: EPL-2.0

// Package signal defines the mono 16-bit sample sequence shared by every
// stage of the lector extraction pipeline.
//
// A Signal is a plain []int16. Stages treat their inputs as read-only and
// return freshly allocated Signals, so a loaded track can be handed to
// several stages without copying up front.
//
// Inner products are accumulated in int64. A product of two int16 values
// fits in 31 bits, so a sum stays exact for any signal shorter than 2^32
// samples, which is far beyond what fits in memory as audio.
package signal
