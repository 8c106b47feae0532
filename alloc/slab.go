package alloc

// slabHeader is the per-page bookkeeping: a stack of free buffer indices,
// whose length is the page's free count. It is kept beside the page's
// buffer, not inside it; no bytes of the page are reserved for it.
type slabHeader struct {
	free     []int
	freeList int
}

type slabPage struct {
	buf    []byte
	class  int // fixed buffer size for this page
	hdr    slabHeader
	inUse  int
}

func newSlabPage(backing Allocator, class, count int) (*slabPage, error) {
	b, err := backing.Allocate(class*count, 0)
	if err != nil {
		return nil, err
	}
	p := &slabPage{buf: b, class: class}
	p.hdr.free = make([]int, count)
	for i := range p.hdr.free {
		p.hdr.free[i] = count - 1 - i
	}
	return p, nil
}

func (p *slabPage) full() bool  { return len(p.hdr.free) == 0 }
func (p *slabPage) empty() bool { return p.inUse == 0 }

func (p *slabPage) take() []byte {
	i := p.hdr.free[len(p.hdr.free)-1]
	p.hdr.free = p.hdr.free[:len(p.hdr.free)-1]
	p.inUse++
	off := i * p.class
	b := p.buf[off : off+p.class : off+p.class]
	clear(b)
	return b
}

func (p *slabPage) give(offsetIndex int) {
	p.hdr.free = append(p.hdr.free, offsetIndex)
	p.inUse--
}

// Slab hands out fixed-size buffers from size-class pages, moving pages
// between a "front" list (has free buffers) and a "back" list (full) as
// spec.md 4.1 describes, and returning a page to the backing allocator
// once it empties.
type Slab struct {
	backing     Allocator
	pagesPerCls int
	front       map[int][]*slabPage // size class -> pages with free space
	back        map[int][]*slabPage // size class -> full pages
	owner       map[uintptrKey]*slabPage
}

// NewSlab returns a Slab allocator that pages buffersPerPage fixed buffers
// at a time from backing (nil selects a private System allocator).
func NewSlab(buffersPerPage int, backing Allocator) *Slab {
	if backing == nil {
		backing = NewSystem()
	}
	if buffersPerPage <= 0 {
		buffersPerPage = 64
	}
	return &Slab{
		backing:     backing,
		pagesPerCls: buffersPerPage,
		front:       make(map[int][]*slabPage),
		back:        make(map[int][]*slabPage),
		owner:       make(map[uintptrKey]*slabPage),
	}
}

func sizeClass(size int) int {
	c := 16
	for c < size {
		c *= 2
	}
	return c
}

func (s *Slab) Allocate(size, align int) ([]byte, error) {
	n := alignUp(size, align)
	cls := sizeClass(n)
	pages := s.front[cls]
	if len(pages) == 0 {
		p, err := newSlabPage(s.backing, cls, s.pagesPerCls)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
		s.front[cls] = pages
	}
	p := pages[len(pages)-1]
	b := p.take()
	s.owner[keyOf(b)] = p
	if p.full() {
		s.front[cls] = pages[:len(pages)-1]
		s.back[cls] = append(s.back[cls], p)
	}
	return b, nil
}

func (s *Slab) Deallocate(p []byte) error {
	k := keyOf(p)
	page, ok := s.owner[k]
	if !ok {
		return nil
	}
	delete(s.owner, k)
	base := keyOf(page.buf[:1])
	idx := int(k-base) / page.class
	wasFull := page.full()
	page.give(idx)
	cls := page.class
	if wasFull {
		s.back[cls] = removePage(s.back[cls], page)
		s.front[cls] = append(s.front[cls], page)
	}
	if page.empty() {
		s.front[cls] = removePage(s.front[cls], page)
		_ = s.backing.Deallocate(page.buf)
	}
	return nil
}

func removePage(pages []*slabPage, target *slabPage) []*slabPage {
	for i, p := range pages {
		if p == target {
			return append(pages[:i], pages[i+1:]...)
		}
	}
	return pages
}

func (s *Slab) TotalAllocated() (uint64, bool) {
	total := uint64(0)
	for cls, pages := range s.front {
		for _, p := range pages {
			total += uint64(p.inUse * cls)
		}
	}
	for cls, pages := range s.back {
		for _, p := range pages {
			total += uint64(p.inUse * cls)
		}
	}
	return total, true
}

func (s *Slab) AllocatedSize(p []byte) (uint64, bool) {
	page, ok := s.owner[keyOf(p)]
	if !ok {
		return 0, false
	}
	return uint64(page.class), true
}
