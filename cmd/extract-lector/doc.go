// SPDX-License-Identifier: EPL-2.0

// Command extract-lector separates a voice-over track from a mix.
//
// Usage:
//
//	extract-lector [flags] <original> <mixed> <output_diff> <output_sum>
//
// The lag between the original and the mix is found by cross-correlation
// within --max-lag samples, or taken from --lag. The original is aligned
// onto the mix, the difference (the voice-over estimate) is written to
// output_diff and the half-sum to output_sum. Inputs and outputs are raw
// little-endian 16-bit mono PCM unless their extension names a container
// format (.wav, .aif, .aiff, .mp3, .ogg for inputs; .wav for outputs).
//
// Every flag has a LECTORX_* environment variable counterpart, for example
// LECTORX_MAX_LAG or LECTORX_POLICY. Flags win over the environment.
package main
