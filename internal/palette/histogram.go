package palette

const (
	sigBits       = 5 // significant bits kept per channel
	rightShift    = 8 - sigBits
	multiplier    = 1 << rightShift
	histogramSize = 1 << (3 * sigBits)
	vboxLength    = 1 << sigBits

	minAlpha   = 125 // pixels with lower alpha are treated as transparent
	whiteLevel = 250 // pixels above this on every channel are treated as white
)

// histogram counts sampled pixels per cell of the reduced color cube.
type histogram [histogramSize]int32

// colorIndex packs reduced channel values into a histogram index.
func colorIndex(r, g, b int) int {
	return r<<(2*sigBits) | g<<sigBits | b
}

// buildHistogram samples every quality-th pixel of pixels and returns the
// histogram of the surviving pixels together with the tightest box that
// contains all of them.
//
// When no pixel survives, the returned box keeps its sentinel bounds
// (min 255, max 0) and a zero count.
func buildHistogram(pixels []byte, format ColorFormat, quality int) (*histogram, vbox) {
	h := new(histogram)

	lo := [3]int{255, 255, 255}
	hi := [3]int{0, 0, 0}

	channels := format.Channels()
	stride := channels * quality
	for pos := 0; pos+channels <= len(pixels); pos += stride {
		r, g, b, a := format.parts(pixels, pos)

		// Mostly transparent or white.
		if a < minAlpha || (r > whiteLevel && g > whiteLevel && b > whiteLevel) {
			continue
		}

		c := [3]int{int(r >> rightShift), int(g >> rightShift), int(b >> rightShift)}
		for ch := range c {
			lo[ch] = min(lo[ch], c[ch])
			hi[ch] = max(hi[ch], c[ch])
		}

		h[colorIndex(c[red], c[green], c[blue])]++
	}

	return h, newVBox(h, lo, hi)
}
