package corun

import "sync"

// A Completion is the shared record of a launched task: whether it has
// finished, and with what. It is safe for concurrent use.
type Completion[T any] struct {
	mu   sync.Mutex
	cond sync.Cond
	done bool
	v    any
	err  error
}

// Launch consumes t, starts it, and returns a [Completion] that can be
// joined later. Launching an empty or already-consumed task is a no-op
// whose completion is immediately done.
//
// Launch installs an adapter continuation that captures t's value or
// error into the completion record, so nothing the task does is ever
// silently lost.
func Launch[T any](t Task[T]) *Completion[T] {
	c := &Completion[T]{}
	c.cond.L = &c.mu
	f := t.f
	if f == nil || f.flag&flagConsumed != 0 {
		c.done = true
		return c
	}
	f.flag |= flagConsumed
	ad, _ := newFrame(nil)
	ad.step = func(ad *frame) result {
		ad.step = func(ad *frame) result {
			c.mu.Lock()
			c.v, c.err = ad.inValue, ad.inErr
			c.done = true
			c.mu.Unlock()
			c.cond.Broadcast()
			return ad.complete(nil, nil)
		}
		return ad.await(f)
	}
	resume(ad)
	return c
}

// Join blocks the calling goroutine until the task has finished, and
// returns its value or its original error, exactly once each join.
// A task that panicked yields its [*PanicError] here.
func (c *Completion[T]) Join() (T, error) {
	c.mu.Lock()
	for !c.done {
		c.cond.Wait()
	}
	v, err := c.v, c.err
	c.mu.Unlock()
	var zero T
	if err != nil {
		return zero, err
	}
	if tv, ok := v.(T); ok {
		return tv, nil
	}
	return zero, nil
}

// Join consumes t, starts it, and blocks the calling goroutine until
// it finishes, returning its value or re-raising its error. It is the
// bridge from ordinary blocking code into task-land: typically used at
// shutdown to drain an actor after closing its channel.
//
// Joining an empty or already-consumed task is a no-op that returns
// the zero value.
func Join[T any](t Task[T]) (T, error) {
	return Launch(t).Join()
}
