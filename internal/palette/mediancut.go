package palette

// split applies a median cut to b along its widest axis.
//
// It returns b unchanged when it holds a single pixel, and otherwise the two
// halves of b. Both halves keep the parent's bounds on the other axes.
func split(h *histogram, b vbox) ([]vbox, error) {
	if b.count == 0 {
		return nil, ErrInvalidVBox
	}

	// Only one pixel, no split.
	if b.count == 1 {
		return []vbox{b}, nil
	}

	axis := b.widest()
	partial, lookAhead, total := partialSums(h, b, axis)

	return cut(h, b, axis, &partial, &lookAhead, total)
}

// partialSums returns the running population along axis, its complement and
// the total population of b. Coordinates outside of b are set to -1.
func partialSums(h *histogram, b vbox, axis channel) (partial, lookAhead [vboxLength]int32, total int32) {
	for i := range partial {
		partial[i] = -1
		lookAhead[i] = -1
	}

	u, v := axis.others()
	var c [3]int
	for i := b.lo[axis]; i <= b.hi[axis]; i++ {
		c[axis] = i
		var sum int32
		for j := b.lo[u]; j <= b.hi[u]; j++ {
			c[u] = j
			for k := b.lo[v]; k <= b.hi[v]; k++ {
				c[v] = k
				sum += h[colorIndex(c[red], c[green], c[blue])]
			}
		}
		total += sum
		partial[i] = total
	}

	for i, sum := range partial {
		if sum != -1 {
			lookAhead[i] = total - sum
		}
	}
	return partial, lookAhead, total
}

// cut finds the split coordinate along axis and builds both halves.
func cut(h *histogram, b vbox, axis channel, partial, lookAhead *[vboxLength]int32, total int32) ([]vbox, error) {
	lo, hi := b.lo[axis], b.hi[axis]

	for i := lo; i <= hi; i++ {
		if partial[i] <= total/2 {
			continue
		}

		left := i - lo
		right := hi - i

		var d2 int
		if left <= right {
			d2 = min(hi-1, i+right/2)
		} else {
			// Float division truncated towards zero, as in color-thief's
			// quantize.js.
			d2 = max(lo, int(float64(i-1)-float64(left)/2.0))
		}

		// Avoid 0-count boxes.
		for d2 < 0 || partial[d2] <= 0 {
			d2++
		}
		count2 := lookAhead[d2]
		for count2 == 0 && d2 > 0 && partial[d2-1] > 0 {
			d2--
			count2 = lookAhead[d2]
		}

		hi1 := b.hi
		hi1[axis] = d2
		lo2 := b.lo
		lo2[axis] = d2 + 1

		return []vbox{newVBox(h, b.lo, hi1), newVBox(h, lo2, b.hi)}, nil
	}

	return nil, ErrVBoxCutFailed
}
