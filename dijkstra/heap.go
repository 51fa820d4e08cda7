package dijkstra

// entry is a (vertex id, key) pair stored in the heap. The same id may
// appear several times with different keys; the engine retires stale
// entries at extraction time.
type entry struct {
	id  int
	key float64
}

// MinHeap is an array-based binary min-heap of (id, key) pairs ordered
// by ascending key. The backing array is 1-indexed: slot 0 is an unused
// sentinel, so parent/child arithmetic is index/2, 2*index, 2*index+1.
//
// MinHeap deliberately offers no decrease-key or positional update.
// To improve a vertex's priority, Insert a fresh entry and discard the
// stale one when it surfaces. Equal keys are returned in whatever order
// the heap structure yields.
type MinHeap struct {
	entries []entry // entries[0] unused
	size    int
}

// NewMinHeap returns an empty heap with room for capacity entries
// before the first growth. Capacity below one is raised to one.
func NewMinHeap(capacity int) *MinHeap {
	if capacity < 1 {
		capacity = 1
	}

	return &MinHeap{entries: make([]entry, capacity+1)}
}

// Len returns the number of entries currently held.
func (h *MinHeap) Len() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap) IsEmpty() bool { return h.size == 0 }

// Insert adds (id, key) and restores the heap order.
// Amortized O(log n); the backing array doubles when full.
func (h *MinHeap) Insert(id int, key float64) {
	if h.size == len(h.entries)-1 {
		h.grow()
	}
	h.size++
	h.entries[h.size] = entry{id: id, key: key}
	h.percolateUp(h.size)
}

// Peek returns the minimum-key entry without removing it.
// ok is false when the heap is empty.
func (h *MinHeap) Peek() (id int, key float64, ok bool) {
	if h.size == 0 {
		return 0, 0, false
	}

	return h.entries[1].id, h.entries[1].key, true
}

// ExtractMin removes and returns the minimum-key entry in O(log n).
// ok is false when the heap is empty.
func (h *MinHeap) ExtractMin() (id int, key float64, ok bool) {
	if h.size == 0 {
		return 0, 0, false
	}
	min := h.entries[1]
	h.entries[1] = h.entries[h.size]
	h.size--
	h.percolateDown(1)

	return min.id, min.key, true
}

// grow doubles the backing array, keeping the index-0 sentinel.
func (h *MinHeap) grow() {
	next := make([]entry, 2*len(h.entries))
	copy(next, h.entries[:h.size+1])
	h.entries = next
}

// percolateUp floats entries[i] toward the root until its parent's key
// is no larger.
func (h *MinHeap) percolateUp(i int) {
	for i > 1 && h.entries[i].key < h.entries[i/2].key {
		h.entries[i], h.entries[i/2] = h.entries[i/2], h.entries[i]
		i /= 2
	}
}

// percolateDown sinks entries[i] until both children have keys no
// smaller than it.
func (h *MinHeap) percolateDown(i int) {
	for {
		smallest := i
		if l := 2 * i; l <= h.size && h.entries[l].key < h.entries[smallest].key {
			smallest = l
		}
		if r := 2*i + 1; r <= h.size && h.entries[r].key < h.entries[smallest].key {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
}
