package palette

import (
	"errors"
	"slices"
	"testing"
)

func TestByCount(t *testing.T) {
	a := vbox{count: 3, volume: 100}
	b := vbox{count: 5, volume: 1}

	if byCount(a, b) >= 0 {
		t.Error("smaller population should sort first")
	}
	if byCount(b, a) <= 0 {
		t.Error("larger population should sort last")
	}
	if byCount(a, vbox{count: 3, volume: 1}) != 0 {
		t.Error("volume must not affect population order")
	}
}

func TestByProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b vbox
		want int
	}{
		{"product decides", vbox{count: 10, volume: 2}, vbox{count: 3, volume: 10}, -1},
		{"equal counts use volume", vbox{count: 4, volume: 9}, vbox{count: 4, volume: 2}, 1},
		{"empty boxes use volume", vbox{count: 0, volume: 0}, vbox{count: 0, volume: 8}, -1},
		{"empty before populated", vbox{count: 0, volume: 512}, vbox{count: 1, volume: 1}, -1},
		{"identical", vbox{count: 2, volume: 2}, vbox{count: 2, volume: 2}, 0},
		{"no overflow", vbox{count: 1 << 30, volume: 32768}, vbox{count: 1 << 29, volume: 32768}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := byProduct(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIterate_ReachesTarget(t *testing.T) {
	h := new(histogram)
	for i := 0; i < vboxLength; i += 4 {
		h[colorIndex(i, 31-i, i/2)] = int32(1 + i)
	}
	root := newVBox(h, [3]int{0, 0, 0}, [3]int{31, 31, 31})

	queue, err := iterate(h, []vbox{root}, byCount, 5)
	if err != nil {
		t.Fatalf("iterate failed: %v", err)
	}
	if len(queue) != 5 {
		t.Errorf("got %d boxes, want 5", len(queue))
	}
	if !slices.IsSortedFunc(queue, byCount) {
		t.Error("queue is not sorted by population")
	}

	var total int32
	for _, b := range queue {
		total += b.count
	}
	if total != root.count {
		t.Errorf("population not preserved: got %d, want %d", total, root.count)
	}
}

func TestIterate_StopsWhenNothingSplits(t *testing.T) {
	// Two single pixels: after one cut no box can be split further, the
	// iteration budget runs out and the queue is returned as is.
	h := new(histogram)
	h[colorIndex(0, 0, 0)] = 1
	h[colorIndex(31, 31, 31)] = 1
	root := newVBox(h, [3]int{0, 0, 0}, [3]int{31, 31, 31})

	queue, err := iterate(h, []vbox{root}, byCount, 10)
	if err != nil {
		t.Fatalf("iterate failed: %v", err)
	}
	if len(queue) != 2 {
		t.Errorf("got %d boxes, want 2", len(queue))
	}
}

func TestIterate_SkipsEmptyTail(t *testing.T) {
	h := new(histogram)
	empty := newVBox(h, [3]int{0, 0, 0}, [3]int{31, 31, 31})

	queue, err := iterate(h, []vbox{empty}, byCount, 3)
	if err != nil {
		t.Fatalf("iterate failed: %v", err)
	}
	if len(queue) != 1 || queue[0] != empty {
		t.Errorf("empty queue head should be left alone, got %+v", queue)
	}
}

func TestIterate_PropagatesCutErrors(t *testing.T) {
	h := new(histogram)
	stale := vbox{lo: [3]int{0, 0, 0}, hi: [3]int{3, 3, 3}, count: 5, volume: 64}

	_, err := iterate(h, []vbox{stale}, byCount, 3)
	if !errors.Is(err, ErrVBoxCutFailed) {
		t.Errorf("got %v, want ErrVBoxCutFailed", err)
	}
}
