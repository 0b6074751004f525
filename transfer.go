package corun

type action uint8

const (
	_ action = iota
	doSuspend
	doTransfer
	doDone
)

const (
	flagConsumed uint8 = 1 << iota
	flagDone
	flagRecyclable
	flagRecycled
	flagEscaped
)

// A step is one unit of work of a frame. The return value determines
// what the trampoline does next: suspend, transfer into another frame,
// or complete the frame and hand control to its continuation.
type step func(f *frame) result

type result struct {
	action action
	next   *frame
}

// A frame is one link of a task chain: the suspended state of a single
// computation together with a weak, consumed-once reference to whoever
// is awaiting it.
//
// A frame is owned by exactly one logical execution at a time. It may
// migrate between goroutines across suspension points, but it is never
// touched from two goroutines at once; every handoff goes through a
// synchronized resumption (a channel mutex, a one-shot gate, etc.).
type frame struct {
	flag  uint8
	alloc allocator
	step  step
	cont  *frame

	// inValue/inErr double as the inbox for a completed child's result
	// and, once flagDone is set, as the frame's own result slot.
	inValue any
	inErr   error

	// child and child2 hold handles consumed at construction but not
	// yet started, so that Discard can release a whole unstarted chain.
	child  *frame
	child2 *frame
}

// complete records the frame's result and asks the trampoline to hand
// control to the registered continuation, if any.
func (f *frame) complete(v any, err error) result {
	f.flag |= flagDone
	f.inValue, f.inErr = v, err
	return result{action: doDone}
}

// await registers f as child's continuation and transfers control into
// child. When child completes, its result lands in f.inValue/f.inErr
// and f's current step runs again.
func (f *frame) await(child *frame) result {
	child.cont = f
	return result{action: doTransfer, next: child}
}

// awaitTail transfers into child in tail position. f has nothing left
// to do but forward child's result, so child is linked directly to f's
// continuation and f is freed now rather than when the chain ends.
// Recursive loops built from combinators therefore run in a constant
// number of live frames.
func (f *frame) awaitTail(child *frame) result {
	child.cont = f.cont
	free(f)
	return result{action: doTransfer, next: child}
}

// forward completes f with whatever the awaited child delivered.
func (f *frame) forward() result {
	return f.complete(f.inValue, f.inErr)
}

// resume drives the chain containing f until every frame in it has
// either suspended or completed.
//
// Completion is a symmetric transfer: when a frame finishes, control
// moves directly to its continuation inside this loop, never by
// returning through nested calls. The goroutine stack therefore stays
// O(1) regardless of how many frames complete in sequence.
func resume(f *frame) {
	for f != nil {
		res := runStep(f)
		switch res.action {
		case doSuspend:
			return
		case doTransfer:
			f = res.next
		case doDone:
			next := f.cont
			v, err := f.inValue, f.inErr
			free(f)
			if next == nil {
				return // No continuation registered: terminal.
			}
			next.inValue, next.inErr = v, err
			f = next
		default:
			panic("corun: internal error: unknown action")
		}
	}
}

// runStep runs the frame's current step, converting a panic into
// completion with a [*PanicError].
func runStep(f *frame) (res result) {
	defer func() {
		if v := recover(); v != nil {
			res = f.complete(nil, newPanicError(v))
		}
	}()
	return f.step(f)
}

// free returns a frame to its allocator.
func free(f *frame) {
	a := f.alloc
	f.step = nil
	f.cont = nil
	f.inValue = nil
	f.inErr = nil
	f.child = nil
	f.child2 = nil
	a.free(f)
}

// freeChain releases f and every unstarted frame reachable from it.
// Iterative on purpose: a discarded chain can be arbitrarily long.
func freeChain(f *frame) {
	stack := []*frame{f}
	for len(stack) != 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.child != nil {
			stack = append(stack, g.child)
		}
		if g.child2 != nil {
			stack = append(stack, g.child2)
		}
		free(g)
	}
}
