// Package palette extracts a small representative color palette from raw
// pixel data using median-cut quantization.
//
// The package works on already-decoded, interleaved pixel bytes. Decoding
// files and converting image.Image values is left to callers (see the
// imaging package).
//
// # Algorithm
//
//  1. Sampling: every quality-th pixel is read. Pixels with alpha below 125
//     or with all channels above 250 are skipped. The remaining pixels are
//     reduced to 5 bits per channel and counted in a 32768 cell histogram.
//  2. Splitting: starting from the box that bounds every sampled color, the
//     most populated box is cut along its widest axis at the coordinate that
//     balances its population, until three quarters of the requested colors
//     exist.
//  3. The remaining cuts are driven by population times volume, so that
//     large sparse regions of the color space get their own entries.
//  4. Each box contributes the population weighted average of its cells.
//
// # Determinism
//
// Get is a pure function of its arguments. Identical input always yields
// an identical palette, and calls are safe to run concurrently.
//
// # Errors
//
//   - ErrInvalidVBox: no pixel survived sampling (fully transparent or
//     white input), or an empty box had to be split.
//   - ErrVBoxCutFailed: no balanced cut point exists for a box.
//
// Out-of-range quality or color counts are programming errors and panic.
package palette
