package corun

import (
	"sync"
	"sync/atomic"
	"time"
)

// A Scheduler accepts zero-argument units of work and runs each of
// them at some later point, possibly on another goroutine. It is the
// interface the runtime expects from an external worker pool.
type Scheduler interface {
	Schedule(f func())
}

// SchedulerFunc adapts a function to the [Scheduler] interface.
type SchedulerFunc func(f func())

func (s SchedulerFunc) Schedule(f func()) { s(f) }

// Hop returns a task that suspends and resumes on s. It is the
// explicit "move to the worker pool" await point: everything chained
// after a Hop runs wherever s runs its work.
func Hop(s Scheduler) Task[struct{}] {
	return AwaitFunc(func(fire func(struct{}, error)) {
		s.Schedule(func() { fire(struct{}{}, nil) })
	})
}

// A Timer schedules a call after a duration. The returned stop
// function cancels the call and reports whether it was in time.
// It is the interface the runtime expects from an external timer
// facility.
type Timer interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SystemTimer is the [Timer] backed by the runtime clock.
type SystemTimer struct{}

func (SystemTimer) AfterFunc(d time.Duration, f func()) (stop func() bool) {
	return time.AfterFunc(d, f).Stop
}

// Sleep returns a task that suspends for d and resumes on tm's
// goroutine.
func Sleep(tm Timer, d time.Duration) Task[struct{}] {
	return AwaitFunc(func(fire func(struct{}, error)) {
		tm.AfterFunc(d, func() { fire(struct{}{}, nil) })
	})
}

// A CancelToken is a shared flag cooperatively checked by queued work.
// Once a unit of work has started running, cancellation does not
// preempt it; the token only prevents work that has not yet begun.
type CancelToken struct {
	fired atomic.Bool
}

// Cancel sets the flag. Safe to call from any goroutine, repeatedly.
func (c *CancelToken) Cancel() { c.fired.Store(true) }

// Canceled reports whether the flag is set.
func (c *CancelToken) Canceled() bool { return c.fired.Load() }

// Reset clears the flag so the token can guard a new batch of work.
func (c *CancelToken) Reset() { c.fired.Store(false) }

type poolItem struct {
	f      func()
	cancel *CancelToken
}

// A Pool is a bounded work queue: a fixed number of workers drain a
// fixed-capacity backlog. At most as many items as there are workers
// are ever in flight, and each item's cancel token, if any, is checked
// immediately before the item runs.
//
// Pool implements [Scheduler], so it can serve as the target of [Hop].
type Pool struct {
	queue chan poolItem
	wg    sync.WaitGroup
}

// NewPool creates a pool with the given number of workers and backlog
// capacity. The workers start immediately.
func NewPool(workers, backlog int) *Pool {
	if workers <= 0 {
		panic("corun(Pool): nonpositive worker count")
	}
	p := &Pool{queue: make(chan poolItem, backlog)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.work()
		}()
	}
	return p
}

func (p *Pool) work() {
	for it := range p.queue {
		if it.cancel != nil && it.cancel.Canceled() {
			continue
		}
		it.f()
	}
}

// Submit enqueues f, blocking while the backlog is full. cancel may be
// nil. Submitting to a closed pool panics.
func (p *Pool) Submit(f func(), cancel *CancelToken) {
	p.queue <- poolItem{f: f, cancel: cancel}
}

// Schedule implements [Scheduler].
func (p *Pool) Schedule(f func()) { p.Submit(f, nil) }

// Close stops accepting work and blocks until the workers have drained
// the backlog and exited.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}
