package palette

import (
	"math/rand"
	"testing"
)

// randomHistogram fills n random cells of a histogram with weights 1..maxWeight.
func randomHistogram(rng *rand.Rand, n int, maxWeight int32) *histogram {
	h := new(histogram)
	for i := 0; i < n; i++ {
		h[rng.Intn(histogramSize)] += 1 + rng.Int31n(maxWeight)
	}
	return h
}

// randomBounds returns random inclusive bounds inside the reduced cube.
func randomBounds(rng *rand.Rand) (lo, hi [3]int) {
	for ch := range lo {
		a, b := rng.Intn(vboxLength), rng.Intn(vboxLength)
		lo[ch], hi[ch] = min(a, b), max(a, b)
	}
	return lo, hi
}

// contains reports whether the reduced color (r, g, b) lies inside b.
func contains(b vbox, r, g, bl int) bool {
	c := [3]int{r, g, bl}
	for ch := range c {
		if c[ch] < b.lo[ch] || c[ch] > b.hi[ch] {
			return false
		}
	}
	return true
}

// directCount sums every histogram cell inside b by scanning the whole cube.
func directCount(h *histogram, b vbox) int32 {
	var sum int32
	for index, v := range h {
		r, g, bl := splitColorIndex(index)
		if contains(b, r, g, bl) {
			sum += v
		}
	}
	return sum
}

func TestVBoxCount_MatchesDirectSum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		h := randomHistogram(rng, 2000, 50)
		lo, hi := randomBounds(rng)
		box := newVBox(h, lo, hi)

		if want := directCount(h, box); box.count != want {
			t.Fatalf("box %v-%v: count %d, direct sum %d", lo, hi, box.count, want)
		}
	}
}

func TestVBoxVolume(t *testing.T) {
	h := new(histogram)

	tests := []struct {
		name   string
		lo, hi [3]int
		want   int32
	}{
		{"single cell", [3]int{3, 3, 3}, [3]int{3, 3, 3}, 1},
		{"full cube", [3]int{0, 0, 0}, [3]int{31, 31, 31}, 32768},
		{"slab", [3]int{0, 10, 5}, [3]int{1, 10, 9}, 10},
		{"empty after split", [3]int{13, 0, 0}, [3]int{12, 31, 31}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := newVBox(h, tt.lo, tt.hi)
			if box.volume != tt.want {
				t.Errorf("volume: got %d, want %d", box.volume, tt.want)
			}
		})
	}
}

func TestVBoxAverage(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		h := new(histogram)
		h[colorIndex(31, 0, 12)] = 7

		box := newVBox(h, [3]int{0, 0, 0}, [3]int{31, 31, 31})
		want := Color{R: 252, G: 4, B: 100}
		if box.average != want {
			t.Errorf("got %+v, want %+v", box.average, want)
		}
	})

	t.Run("crowded cell", func(t *testing.T) {
		h := new(histogram)
		h[colorIndex(31, 1, 1)] = 9_000_000

		box := newVBox(h, [3]int{31, 1, 1}, [3]int{31, 1, 1})
		want := Color{R: 252, G: 12, B: 12}
		if box.average != want {
			t.Errorf("got %+v, want %+v", box.average, want)
		}
	})

	t.Run("weighted", func(t *testing.T) {
		h := new(histogram)
		h[colorIndex(0, 0, 0)] = 3  // centre 4
		h[colorIndex(10, 0, 0)] = 1 // centre 84

		box := newVBox(h, [3]int{0, 0, 0}, [3]int{10, 0, 0})
		// (3*4 + 84) / 4 = 24
		want := Color{R: 24, G: 4, B: 4}
		if box.average != want {
			t.Errorf("got %+v, want %+v", box.average, want)
		}
	})

	t.Run("empty box uses midpoint", func(t *testing.T) {
		h := new(histogram)
		box := newVBox(h, [3]int{13, 18, 25}, [3]int{12, 18, 25})
		want := Color{R: 104, G: 148, B: 204}
		if box.average != want {
			t.Errorf("got %+v, want %+v", box.average, want)
		}
	})

	t.Run("midpoint is clamped", func(t *testing.T) {
		h := new(histogram)
		box := newVBox(h, [3]int{255, 255, 255}, [3]int{0, 0, 0})
		want := Color{R: 255, G: 255, B: 255}
		if box.average != want {
			t.Errorf("got %+v, want %+v", box.average, want)
		}
	})
}

func TestVBoxWidest(t *testing.T) {
	h := new(histogram)

	tests := []struct {
		name   string
		lo, hi [3]int
		want   channel
	}{
		{"red widest", [3]int{0, 0, 0}, [3]int{20, 10, 5}, red},
		{"green widest", [3]int{0, 0, 0}, [3]int{5, 20, 10}, green},
		{"blue widest", [3]int{0, 0, 0}, [3]int{5, 10, 20}, blue},
		{"all equal prefers red", [3]int{1, 1, 1}, [3]int{9, 9, 9}, red},
		{"green blue tie prefers green", [3]int{0, 0, 0}, [3]int{3, 9, 9}, green},
		{"red blue tie prefers red", [3]int{0, 0, 0}, [3]int{9, 3, 9}, red},
		{"single cell", [3]int{4, 4, 4}, [3]int{4, 4, 4}, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := newVBox(h, tt.lo, tt.hi)
			if got := box.widest(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
