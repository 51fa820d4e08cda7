package mission

// Memo remembers which unlock codes have already been committed, so a
// code offered again by a later mission is neither re-evaluated nor
// re-applied. It satisfies grid.AppliedSet.
type Memo struct {
	codes map[int]struct{}
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{codes: make(map[int]struct{})}
}

// Insert records code as applied.
func (m *Memo) Insert(code int) {
	m.codes[code] = struct{}{}
}

// Contains reports whether code has been applied.
func (m *Memo) Contains(code int) bool {
	_, ok := m.codes[code]

	return ok
}

// Len returns the number of recorded codes.
func (m *Memo) Len() int { return len(m.codes) }
