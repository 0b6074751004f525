package corun

// A Task is a single-owner handle to a lazy asynchronous computation
// that eventually produces a value of type T or an error.
//
// A task does nothing until it is started, either explicitly with
// [Task.Start], by a blocking [Join] or [Launch], or implicitly when an
// awaiting combinator transfers control into it. Once a task handle has
// been consumed by any combinator or terminal operation, the handle is
// spent; consuming it again panics. The zero Task is empty.
//
// Task values must not be copied and used from more than one place;
// the consumption checks catch double use at run time but cannot make
// copying impossible.
type Task[T any] struct {
	f *frame
}

// consume takes unique ownership of the task's frame.
func (t Task[T]) consume() *frame {
	f := t.f
	if f == nil {
		panic("corun: use of empty task")
	}
	if f.flag&flagConsumed != 0 {
		panic("corun: task used twice")
	}
	f.flag |= flagConsumed
	return f
}

// Start consumes t and runs it on the calling goroutine until it
// completes or first suspends. The eventual result is discarded;
// use [Join], [Launch] or a combinator to observe it.
func (t Task[T]) Start() {
	resume(t.consume())
}

// Discard consumes t and destroys its frames without running them.
// No cleanup code inside the computation runs; callers that need
// cleanup-on-discard must arrange it outside the task.
// Discarding releases any [FrameArena] storage the chain holds.
func (t Task[T]) Discard() {
	freeChain(t.consume())
}

// Pure returns a completed task holding v.
func Pure[T any](v T) Task[T] {
	f, _ := newFrame(nil)
	f.step = func(f *frame) result {
		return f.complete(v, nil)
	}
	return Task[T]{f}
}

// Fail returns a completed task holding err.
func Fail[T any](err error) Task[T] {
	f, _ := newFrame(nil)
	f.step = func(f *frame) result {
		return f.complete(nil, err)
	}
	return Task[T]{f}
}

// New returns a lazy task that runs fn when started.
func New[T any](fn func() (T, error)) Task[T] {
	f, _ := newFrame(nil)
	f.step = func(f *frame) result {
		v, err := fn()
		return f.complete(v, err)
	}
	return Task[T]{f}
}

// NewIn is like [New], but roots the task in a [FrameArena]: the task's
// frame, and every frame a combinator chains onto it, is allocated from
// a instead of the heap.
//
// At most one chain may be rooted in an arena at a time. If a still
// backs a live chain, NewIn returns a task that fails with
// [ErrArenaBusy]; the caller must treat this as a hard capacity error,
// not retry it automatically.
func NewIn[T any](a *FrameArena, fn func() (T, error)) Task[T] {
	if a.InUse() {
		return Fail[T](ErrArenaBusy)
	}
	f, err := newFrame(a)
	if err != nil {
		return Fail[T](err)
	}
	f.step = func(f *frame) result {
		v, err := fn()
		return f.complete(v, err)
	}
	return Task[T]{f}
}

// Bind consumes t and returns a task that runs t, then feeds its value
// to fn and runs the task fn returns in tail position: the task fn
// returns completes directly to Bind's awaiter, so recursive loops
// built with Bind run in a constant number of live frames. If t fails,
// fn is not called and the error propagates. Frames follow t's
// allocator; when that is a [FrameArena], the frames of fn's result
// are adopted into the arena too.
func Bind[A, B any](t Task[A], fn func(A) Task[B]) Task[B] {
	f := t.consume()
	g, err := newFrame(f.alloc)
	if err != nil {
		freeChain(f)
		return Fail[B](err)
	}
	g.child = f
	g.step = func(g *frame) result {
		child := g.child
		g.child = nil
		g.step = func(g *frame) result {
			if g.inErr != nil {
				return g.complete(nil, g.inErr)
			}
			v, _ := g.inValue.(A)
			next, err := graft(g, fn(v).consume())
			if err != nil {
				return g.complete(nil, err)
			}
			return g.awaitTail(next)
		}
		return g.await(child)
	}
	return Task[B]{g}
}

// Then consumes both handles and returns a task that runs t, discards
// its value, and then runs next. If t fails, next never runs and its
// frames are released.
func Then[A, B any](t Task[A], next Task[B]) Task[B] {
	f, nf := t.consume(), next.consume()
	g, err := newFrame(f.alloc)
	if err != nil {
		freeChain(f)
		freeChain(nf)
		return Fail[B](err)
	}
	g.child, g.child2 = f, nf
	g.step = func(g *frame) result {
		child := g.child
		g.child = nil
		g.step = func(g *frame) result {
			next := g.child2
			g.child2 = nil
			if g.inErr != nil {
				freeChain(next)
				return g.complete(nil, g.inErr)
			}
			adopted, err := graft(g, next)
			if err != nil {
				return g.complete(nil, err)
			}
			return g.awaitTail(adopted)
		}
		return g.await(child)
	}
	return Task[B]{g}
}

// Map consumes t and returns a task that applies fn to t's value.
// If t fails, fn is not called and the error propagates.
func Map[A, B any](t Task[A], fn func(A) (B, error)) Task[B] {
	f := t.consume()
	g, err := newFrame(f.alloc)
	if err != nil {
		freeChain(f)
		return Fail[B](err)
	}
	g.child = f
	g.step = func(g *frame) result {
		child := g.child
		g.child = nil
		g.step = func(g *frame) result {
			if g.inErr != nil {
				return g.complete(nil, g.inErr)
			}
			a, _ := g.inValue.(A)
			v, err := fn(a)
			return g.complete(v, err)
		}
		return g.await(child)
	}
	return Task[B]{g}
}

// Catch consumes t and returns a task that runs t and, only if t
// fails, feeds the error to h and runs the task h returns. Values
// pass through untouched. Panics captured as [*PanicError] reach h
// like any other error.
func Catch[T any](t Task[T], h func(error) Task[T]) Task[T] {
	f := t.consume()
	g, err := newFrame(f.alloc)
	if err != nil {
		freeChain(f)
		return Fail[T](err)
	}
	g.child = f
	g.step = func(g *frame) result {
		child := g.child
		g.child = nil
		g.step = func(g *frame) result {
			if g.inErr == nil {
				return g.complete(g.inValue, nil)
			}
			next, err := graft(g, h(g.inErr).consume())
			if err != nil {
				return g.complete(nil, err)
			}
			return g.awaitTail(next)
		}
		return g.await(child)
	}
	return Task[T]{g}
}
