package recolor

// RandomSource yields uniform draws in [0,1).
type RandomSource interface {
	Float64() float64
}

// IndexWalk assigns palette indices as a triangle wave: it climbs from 0,
// turns at a randomly lowered ceiling and falls back to 0. The ceiling never
// rises during a walk.
type IndexWalk struct {
	size      int
	index     int
	direction int
	bound     int
	rnd       RandomSource
}

// NewIndexWalk starts a walk over a palette of the given size. A nil source
// never lowers the ceiling.
func NewIndexWalk(size int, rnd RandomSource) *IndexWalk {
	return &IndexWalk{size: size, direction: 1, bound: size, rnd: rnd}
}

// Next returns the index for the next character.
func (w *IndexWalk) Next() int {
	if w.size <= 1 {
		return 0
	}

	current := w.index
	w.index += w.direction

	if w.index <= 0 {
		w.direction = 1
	} else if w.index >= w.bound-1 {
		w.direction = -1
		w.bound = min(w.bound, w.size-w.draw((w.size+1)/2))
	}
	return current
}

// Bound returns the current turning ceiling.
func (w *IndexWalk) Bound() int {
	return w.bound
}

// draw returns floor(r*n) for a uniform r.
func (w *IndexWalk) draw(n int) int {
	if w.rnd == nil {
		return 0
	}
	return int(w.rnd.Float64() * float64(n))
}

// Indices runs a fresh walk for n characters.
func Indices(n, size int, rnd RandomSource) []int {
	w := NewIndexWalk(size, rnd)
	out := make([]int, n)
	for i := range out {
		out[i] = w.Next()
	}
	return out
}
