package alloc

// System is a general-purpose allocator backed by the Go heap. It tracks a
// running total of live bytes handed out; Deallocate subtracts the size of
// the returned buffer from that total (callers must pass back the exact
// slice Allocate returned, not a reslice of it).
type System struct {
	total uint64
	sizes map[uintptrKey]int
}

// NewSystem returns a ready-to-use System allocator.
func NewSystem() *System {
	return &System{sizes: make(map[uintptrKey]int)}
}

func (s *System) Allocate(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, ErrOOM
	}
	n := alignUp(size, align)
	b := make([]byte, n)
	s.total += uint64(n)
	s.sizes[keyOf(b)] = n
	return b, nil
}

func (s *System) Deallocate(p []byte) error {
	k := keyOf(p)
	if n, ok := s.sizes[k]; ok {
		s.total -= uint64(n)
		delete(s.sizes, k)
	}
	return nil
}

func (s *System) TotalAllocated() (uint64, bool) { return s.total, true }

func (s *System) AllocatedSize(p []byte) (uint64, bool) {
	n, ok := s.sizes[keyOf(p)]
	return uint64(n), ok
}
