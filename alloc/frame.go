package alloc

// Frame allocates in fixed-size pages from a backing allocator and treats
// individual Deallocate calls as a no-op; the entire frame is released in
// one shot via Release (spec.md 4.1: "Frame/block ... Entire frame is
// released on drop").
type Frame struct {
	pageSize int
	backing  Allocator
	pages    [][]byte
	cur      []byte
	off      int
}

// NewFrame returns a Frame allocator that requests pageSize-byte pages
// from backing (a nil backing uses a private System allocator).
func NewFrame(pageSize int, backing Allocator) *Frame {
	if backing == nil {
		backing = NewSystem()
	}
	if pageSize <= 0 {
		pageSize = 4096
	}
	return &Frame{pageSize: pageSize, backing: backing}
}

func (f *Frame) Allocate(size, align int) ([]byte, error) {
	n := alignUp(size, align)
	if f.cur == nil || f.off+n > len(f.cur) {
		pageSize := f.pageSize
		if n > pageSize {
			pageSize = n
		}
		page, err := f.backing.Allocate(pageSize, align)
		if err != nil {
			return nil, err
		}
		f.pages = append(f.pages, page)
		f.cur = page
		f.off = 0
	}
	b := f.cur[f.off : f.off+n : f.off+n]
	f.off += n
	return b, nil
}

// Deallocate is a no-op: individual frees are not supported, only Release.
func (f *Frame) Deallocate(p []byte) error { return nil }

// Release returns every page to the backing allocator and resets the
// frame to empty.
func (f *Frame) Release() {
	for _, p := range f.pages {
		_ = f.backing.Deallocate(p)
	}
	f.pages = nil
	f.cur = nil
	f.off = 0
}

func (f *Frame) TotalAllocated() (uint64, bool) {
	total := uint64(0)
	for _, p := range f.pages {
		total += uint64(len(p))
	}
	return total, true
}

func (f *Frame) AllocatedSize(p []byte) (uint64, bool) { return uint64(len(p)), false }
