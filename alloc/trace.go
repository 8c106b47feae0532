package alloc

import "fmt"

// Event is one recorded call against a traced Allocator.
type Event struct {
	Op     string // "allocate" or "deallocate"
	Size   int
	Align  int
	Caller string
}

func (e Event) String() string {
	if e.Op == "allocate" {
		return fmt.Sprintf("%s: allocate(size=%d, align=%d)", e.Caller, e.Size, e.Align)
	}
	return fmt.Sprintf("%s: deallocate()", e.Caller)
}

// Trace wraps any Allocator and records every call, with its caller site,
// into a stream for later printing (spec.md 4.1).
type Trace struct {
	inner  Allocator
	Events []Event
}

// NewTrace wraps inner with call recording.
func NewTrace(inner Allocator) *Trace {
	return &Trace{inner: inner}
}

func (t *Trace) Allocate(size, align int) ([]byte, error) {
	t.Events = append(t.Events, Event{Op: "allocate", Size: size, Align: align, Caller: callerSite()})
	return t.inner.Allocate(size, align)
}

func (t *Trace) Deallocate(p []byte) error {
	t.Events = append(t.Events, Event{Op: "deallocate", Size: len(p), Caller: callerSite()})
	return t.inner.Deallocate(p)
}

func (t *Trace) TotalAllocated() (uint64, bool) { return t.inner.TotalAllocated() }

func (t *Trace) AllocatedSize(p []byte) (uint64, bool) { return t.inner.AllocatedSize(p) }

// Print writes the recorded event stream, one per line.
func (t *Trace) Print(w interface{ Write([]byte) (int, error) }) {
	for _, e := range t.Events {
		fmt.Fprintln(w, e.String())
	}
}
