package alloc

// Scratch is a ring buffer of fixed capacity. Allocations carve out the
// next contiguous span; once the tail wraps, it fails over to a backing
// Allocator for any request that would not fit in the remaining ring
// space. Deallocations are O(1) and can only truly reclaim space from the
// tail of the ring (LIFO-ish); a deallocation of a non-tail span is
// recorded as a hole and swept lazily the next time the tail catches up to
// it, matching spec.md 4.1's "non-tail frees are marked and collected
// lazily".
type Scratch struct {
	ring     []byte
	head     int // next free offset
	tail     int // oldest live offset
	live     map[int]int  // offset -> size, for spans still considered live
	holes    map[int]bool // offsets marked free out of order
	backing  Allocator
	overflow map[uintptrKey]bool // buffers served by backing, for Deallocate routing
}

// NewScratch returns a Scratch allocator with the given ring capacity,
// failing over to backing for oversized requests. A nil backing falls back
// to a private System allocator.
func NewScratch(capacity int, backing Allocator) *Scratch {
	if backing == nil {
		backing = NewSystem()
	}
	return &Scratch{
		ring:     make([]byte, capacity),
		live:     make(map[int]int),
		holes:    make(map[int]bool),
		backing:  backing,
		overflow: make(map[uintptrKey]bool),
	}
}

func (s *Scratch) Allocate(size, align int) ([]byte, error) {
	n := alignUp(size, align)
	start := s.head
	if start+n > len(s.ring) {
		start = 0
	}
	full := false
	for o, sz := range s.live {
		full = full || (o < start+n && start < o+sz)
	}
	if n > len(s.ring) || full {
		b, err := s.backing.Allocate(size, align)
		if err != nil {
			return nil, err
		}
		s.overflow[keyOf(b)] = true
		return b, nil
	}
	if s.head+n > len(s.ring) {
		// wrap: everything from head..len(ring) becomes a hole until swept.
		for o := s.head; o < len(s.ring); o++ {
			s.holes[o] = true
		}
		s.head = 0
	}
	off := s.head
	s.head += n
	s.live[off] = n
	b := s.ring[off : off+n : off+n]
	clear(b)
	return b, nil
}

func (s *Scratch) Deallocate(p []byte) error {
	k := keyOf(p)
	if s.overflow[k] {
		delete(s.overflow, k)
		return s.backing.Deallocate(p)
	}
	off, n := s.spanOf(p)
	if n < 0 {
		return nil
	}
	if off == s.tail {
		s.tail += n
		delete(s.live, off)
		s.sweep()
		return nil
	}
	for o := off; o < off+n; o++ {
		s.holes[o] = true
	}
	delete(s.live, off)
	return nil
}

// sweep advances the tail over any contiguous run of holes, reclaiming
// space lazily as spec.md 4.1 describes.
func (s *Scratch) sweep() {
	for s.holes[s.tail] {
		delete(s.holes, s.tail)
		s.tail++
	}
}

func (s *Scratch) spanOf(p []byte) (offset, size int) {
	if len(p) == 0 || len(s.ring) == 0 {
		return 0, -1
	}
	base := keyOf(s.ring[:1])
	pk := keyOf(p)
	off := int(pk - base)
	if off < 0 || off >= len(s.ring) {
		return 0, -1
	}
	if n, ok := s.live[off]; ok {
		return off, n
	}
	return off, -1
}

// InUse reports whether p lies within the ring's backing array.
func (s *Scratch) InUse(p []byte) bool {
	if len(p) == 0 || len(s.ring) == 0 {
		return false
	}
	off := int(keyOf(p) - keyOf(s.ring[:1]))
	return off >= 0 && off < len(s.ring)
}

func (s *Scratch) TotalAllocated() (uint64, bool) {
	total := uint64(0)
	for _, n := range s.live {
		total += uint64(n)
	}
	return total, true
}

func (s *Scratch) AllocatedSize(p []byte) (uint64, bool) {
	_, n := s.spanOf(p)
	if n < 0 {
		return 0, false
	}
	return uint64(n), true
}
