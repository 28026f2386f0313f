package shufflecheck

// mantissaStream is a worker-owned binary min-heap of generated mantissas.
//
// A stream is populated once during its worker's run (push per generated
// value, O(log n)) and then drained strictly in ascending order by the
// merge phase (pop, O(log n)). It is exclusively owned by its worker until
// handed off to the merge; nothing mutates it concurrently.
type mantissaStream struct {
	vals []uint64
}

func newMantissaStream(capacity int64) *mantissaStream {
	if capacity < 0 {
		capacity = 0
	}
	return &mantissaStream{vals: make([]uint64, 0, capacity)}
}

func (s *mantissaStream) len() int {
	return len(s.vals)
}

// push adds a mantissa and maintains the heap property. O(log n).
func (s *mantissaStream) push(v uint64) {
	s.vals = append(s.vals, v)
	j := len(s.vals) - 1
	for {
		i := (j - 1) / 2 // parent
		if i == j || s.vals[i] <= s.vals[j] {
			break
		}
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
		j = i
	}
}

// pop removes and returns the smallest mantissa. The stream must be
// non-empty.
func (s *mantissaStream) pop() uint64 {
	n := len(s.vals) - 1
	s.vals[0], s.vals[n] = s.vals[n], s.vals[0]
	s.siftDown(0, n)
	v := s.vals[n]
	s.vals = s.vals[:n]
	return v
}

func (s *mantissaStream) siftDown(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && s.vals[j2] < s.vals[j1] {
			j = j2 // right child
		}
		if s.vals[i] <= s.vals[j] {
			break
		}
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
		i = j
	}
}

// frontierEntry is one "next candidate" of the k-way merge: a mantissa
// tagged with the index of the worker stream it came from.
type frontierEntry struct {
	val    uint64
	source int
}

// frontierHeap is the k-way merge frontier: a min-heap holding at most one
// candidate per still-non-empty worker stream, so its size never exceeds
// the worker count. Ordered by value with a deterministic tie-break on the
// source index, which keeps the emission order (and therefore the sequence
// digest) identical from run to run.
type frontierHeap struct {
	entries []frontierEntry
}

func newFrontierHeap(capacity int) *frontierHeap {
	return &frontierHeap{entries: make([]frontierEntry, 0, capacity)}
}

func (h *frontierHeap) len() int {
	return len(h.entries)
}

func (h *frontierHeap) less(i, j int) bool {
	if h.entries[i].val != h.entries[j].val {
		return h.entries[i].val < h.entries[j].val
	}
	// Deterministic tie-break by source stream
	return h.entries[i].source < h.entries[j].source
}

func (h *frontierHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// push adds a candidate and maintains the heap property. O(log n).
func (h *frontierHeap) push(val uint64, source int) {
	h.entries = append(h.entries, frontierEntry{val: val, source: source})
	j := len(h.entries) - 1
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// pop removes and returns the smallest candidate. The frontier must be
// non-empty.
func (h *frontierHeap) pop() frontierEntry {
	n := len(h.entries) - 1
	h.swap(0, n)
	h.down(0, n)
	e := h.entries[n]
	h.entries = h.entries[:n]
	return e
}

func (h *frontierHeap) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}
