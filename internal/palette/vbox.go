package palette

// channel selects one axis of the reduced color cube.
type channel int

const (
	red channel = iota
	green
	blue
)

func (c channel) String() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	default:
		return "blue"
	}
}

// others returns the two remaining axes in red, green, blue order.
func (c channel) others() (channel, channel) {
	switch c {
	case red:
		return green, blue
	case green:
		return red, blue
	default:
		return red, green
	}
}

// vbox is an axis-aligned box of the reduced color cube. Bounds are
// inclusive and indexed by channel.
//
// A vbox is a value: every derived field is computed once by newVBox and a
// box with different bounds is always a new vbox. A split may yield a box
// whose min exceeds its max on the split axis; such a box is empty (zero
// count and volume).
type vbox struct {
	lo, hi [3]int

	average Color
	count   int32
	volume  int32
}

// newVBox builds a box from its bounds and computes population, volume and
// average color against h.
func newVBox(h *histogram, lo, hi [3]int) vbox {
	b := vbox{lo: lo, hi: hi}
	b.count = b.calcCount(h)
	b.volume = b.calcVolume()
	b.average = b.calcAverage(h)
	return b
}

// calcVolume returns the number of cells spanned by the box, empty ones
// included.
func (b vbox) calcVolume() int32 {
	return int32((b.hi[red] - b.lo[red] + 1) *
		(b.hi[green] - b.lo[green] + 1) *
		(b.hi[blue] - b.lo[blue] + 1))
}

// calcCount sums the histogram over every cell inside the box.
func (b vbox) calcCount(h *histogram) int32 {
	var count int32
	for r := b.lo[red]; r <= b.hi[red]; r++ {
		for g := b.lo[green]; g <= b.hi[green]; g++ {
			for bl := b.lo[blue]; bl <= b.hi[blue]; bl++ {
				count += h[colorIndex(r, g, bl)]
			}
		}
	}
	return count
}

// calcAverage returns the population weighted centroid of the box mapped
// back to 8-bit channels. An empty box falls back to its geometric center.
func (b vbox) calcAverage(h *histogram) Color {
	var total, rSum, gSum, bSum int64

	for r := b.lo[red]; r <= b.hi[red]; r++ {
		for g := b.lo[green]; g <= b.hi[green]; g++ {
			for bl := b.lo[blue]; bl <= b.hi[blue]; bl++ {
				hval := float64(h[colorIndex(r, g, bl)])
				total += int64(hval)
				// Each cell is truncated on its own before summing. The
				// product can exceed int32 for cells holding millions of
				// samples.
				rSum += int64(hval * (float64(r) + 0.5) * multiplier)
				gSum += int64(hval * (float64(g) + 0.5) * multiplier)
				bSum += int64(hval * (float64(bl) + 0.5) * multiplier)
			}
		}
	}

	if total > 0 {
		return Color{
			R: uint8(rSum / total),
			G: uint8(gSum / total),
			B: uint8(bSum / total),
		}
	}

	mid := func(ch channel) uint8 {
		return uint8(min(multiplier*(b.lo[ch]+b.hi[ch]+1)/2, 255))
	}
	return Color{R: mid(red), G: mid(green), B: mid(blue)}
}

// widest returns the axis with the largest span. Ties resolve red, then
// green, then blue.
func (b vbox) widest() channel {
	rw := b.hi[red] - b.lo[red]
	gw := b.hi[green] - b.lo[green]
	bw := b.hi[blue] - b.lo[blue]

	switch max(rw, gw, bw) {
	case rw:
		return red
	case gw:
		return green
	default:
		return blue
	}
}
