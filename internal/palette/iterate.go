package palette

import (
	"cmp"
	"slices"
)

const maxIterations = 1000

// comparator orders boxes ascending; the queue pops from the end.
type comparator func(a, b vbox) int

// byCount orders boxes by population.
func byCount(a, b vbox) int {
	return cmp.Compare(a.count, b.count)
}

// byProduct orders boxes by population times volume. Boxes with the same
// population, empty ones included, are ordered by volume.
func byProduct(a, b vbox) int {
	if a.count == b.count {
		return cmp.Compare(a.volume, b.volume)
	}
	return cmp.Compare(int64(a.count)*int64(a.volume), int64(b.count)*int64(b.volume))
}

// iterate repeatedly splits the highest priority box of queue until target
// colors have been produced or maxIterations is reached. The queue is kept
// sorted by compare after every change and is returned.
func iterate(h *histogram, queue []vbox, compare comparator, target int) ([]vbox, error) {
	colors := 1

	for range maxIterations {
		if len(queue) == 0 {
			break
		}

		last := queue[len(queue)-1]
		if last.count == 0 {
			slices.SortStableFunc(queue, compare)
			continue
		}
		queue = queue[:len(queue)-1]

		boxes, err := split(h, last)
		if err != nil {
			return nil, err
		}
		queue = append(queue, boxes...)
		if len(boxes) == 2 {
			colors++
		}

		slices.SortStableFunc(queue, compare)

		if colors >= target {
			break
		}
	}

	return queue, nil
}
