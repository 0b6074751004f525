package corun

import "sync"

// An allocator supplies and reclaims frames.
type allocator interface {
	alloc() (*frame, error)
	free(f *frame)
}

// newFrame allocates a frame from a, falling back to the shared pooled
// allocator when a is nil.
func newFrame(a allocator) (*frame, error) {
	if a == nil {
		a = &sharedPool
	}
	f, err := a.alloc()
	if err != nil {
		return nil, err
	}
	f.alloc = a
	return f, nil
}

// sharedPool is the default allocation strategy: ordinary heap frames
// recycled through a sync.Pool.
var sharedPool poolAllocator

type poolAllocator struct {
	pool sync.Pool
}

func (a *poolAllocator) alloc() (*frame, error) {
	if v := a.pool.Get(); v != nil {
		f := v.(*frame)
		f.flag = flagRecyclable
		return f, nil
	}
	f := new(frame)
	f.flag = flagRecyclable
	return f, nil
}

func (a *poolAllocator) free(f *frame) {
	if f.flag&(flagRecyclable|flagRecycled) == flagRecyclable {
		f.flag |= flagRecycled
		a.pool.Put(f)
	}
}

// A FrameArena supplies storage for the frames of one task chain at a
// time without per-frame heap allocation. Capacity is fixed at creation.
// The arena backs the whole chain: frames chained onto an arena-rooted
// task are allocated from it, and the frames of continuations built
// while the chain runs are adopted into it when they are awaited.
//
// The arena is a deliberate opt-in for a single hot, serialized producer
// of task chains (for example an actor's per-message handler). It is not
// a general allocator: at most one chain may be rooted in it at any
// instant (see [NewIn]), and it must not be shared by more than one
// logical execution.
//
// Outgrowing the capacity is a hard failure by default: the chain
// completes with [ErrArenaOverflow]. [FrameArena.AllowFallback] opts
// into silent heap fallback instead.
type FrameArena struct {
	slots    []frame
	freelist []*frame
	next     int
	live     int
	fallback bool
}

// NewFrameArena creates an arena with room for n frames.
func NewFrameArena(n int) *FrameArena {
	if n <= 0 {
		panic("corun(FrameArena): nonpositive capacity")
	}
	return &FrameArena{slots: make([]frame, n)}
}

// AllowFallback makes the arena degrade to heap allocation when its
// capacity is exhausted, instead of failing with [ErrArenaOverflow].
// It returns the arena for chaining.
func (a *FrameArena) AllowFallback() *FrameArena {
	a.fallback = true
	return a
}

// InUse reports whether the arena currently backs a live task chain.
func (a *FrameArena) InUse() bool {
	return a.live != 0
}

func (a *FrameArena) available() int {
	return len(a.freelist) + (len(a.slots) - a.next)
}

// adopt moves an unstarted chain into the arena, charging its frames
// against the capacity. A chain that does not fit is released and
// reported as [ErrArenaOverflow], or left on the heap untouched when
// fallback is enabled.
func (a *FrameArena) adopt(f *frame) (*frame, error) {
	if chainSize(f, a) > a.available() {
		if a.fallback {
			return f, nil
		}
		freeChain(f)
		return nil, ErrArenaOverflow
	}
	return a.move(f), nil
}

// move relocates f and every frame under it into the arena. The caller
// has checked capacity, so allocation cannot fail and the recursion is
// bounded by the arena's size.
func (a *FrameArena) move(f *frame) *frame {
	if f.alloc == allocator(a) {
		return f
	}
	g, _ := a.alloc()
	g.alloc = a
	g.flag |= f.flag & (flagConsumed | flagDone)
	g.step = f.step
	g.inValue, g.inErr = f.inValue, f.inErr
	if f.child != nil {
		g.child = a.move(f.child)
	}
	if f.child2 != nil {
		g.child2 = a.move(f.child2)
	}
	free(f)
	return g
}

// chainSize counts the frames of an unstarted chain not already owned
// by a.
func chainSize(f *frame, a allocator) int {
	n := 0
	stack := []*frame{f}
	for len(stack) != 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.alloc == a {
			continue
		}
		n++
		if g.child != nil {
			stack = append(stack, g.child)
		}
		if g.child2 != nil {
			stack = append(stack, g.child2)
		}
	}
	return n
}

// graft hands a freshly built, unstarted chain to the allocator of the
// awaiting frame. An awaiter backed by a [FrameArena] adopts the chain,
// so continuations built while an arena chain runs stay in the arena;
// any other awaiter keeps the chain where it was built.
func graft(g *frame, f *frame) (*frame, error) {
	if a, ok := g.alloc.(*FrameArena); ok && f.alloc != g.alloc {
		return a.adopt(f)
	}
	return f, nil
}

func (a *FrameArena) alloc() (*frame, error) {
	var f *frame
	switch {
	case len(a.freelist) != 0:
		f = a.freelist[len(a.freelist)-1]
		a.freelist = a.freelist[:len(a.freelist)-1]
		f.flag = 0
	case a.next < len(a.slots):
		f = &a.slots[a.next]
		a.next++
		f.flag = 0
	case a.fallback:
		f = new(frame)
		f.flag = flagEscaped
	default:
		return nil, ErrArenaOverflow
	}
	a.live++
	return f, nil
}

func (a *FrameArena) free(f *frame) {
	a.live--
	if f.flag&flagEscaped == 0 {
		a.freelist = append(a.freelist, f)
	}
	if a.live == 0 {
		// Last frame of the chain: the arena is vacant again.
		a.next = 0
		a.freelist = a.freelist[:0]
	}
}
