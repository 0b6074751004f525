package corun

import "sync"

// A Channel is a multiple-producer single-consumer mailbox.
//
// Any number of goroutines may call [Channel.Send] and [Channel.Close]
// concurrently. Receiving is restricted to one logical consumer at a
// time: starting a second receive while one is suspended panics. The
// channel itself never blocks a sender; the queue is unbounded.
//
// Ordering: values are delivered in the order the sends acquired the
// internal lock, so no value is ever reordered relative to another
// value from the same producer.
//
// The zero Channel is empty and open, ready for use.
type Channel[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool
	recv   *frame
}

// Send enqueues v and reports whether it was accepted. Send returns
// false if and only if the channel is already closed; a rejected value
// is never observed by the consumer.
//
// If the consumer is suspended waiting, Send resumes it on the calling
// goroutine, strictly after releasing the internal lock, so the resumed
// code may re-enter the channel freely.
func (c *Channel[T]) Send(v T) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.items = append(c.items, v)
	f := c.recv
	c.recv = nil
	c.mu.Unlock()
	if f != nil {
		resume(f)
	}
	return true
}

// Close closes the channel. Closing is monotonic and idempotent: once
// closed, every Send fails, and once the queue drains, every receive
// completes with [ErrClosed]. Values sent before Close are still
// delivered. A consumer suspended on an empty queue is woken so it can
// observe the close.
func (c *Channel[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	f := c.recv
	c.recv = nil
	c.mu.Unlock()
	if f != nil {
		resume(f)
	}
}

// Receive returns a task that yields the next value.
//
// Draining takes priority over termination: as long as the queue is
// non-empty the task completes with the front value even after Close.
// On an empty open channel the task suspends until a Send or Close
// arrives, then re-checks the queue. On an empty closed channel the
// task fails with [ErrClosed].
//
// Only one logical consumer may receive at a time. Running a second
// receive while one is suspended is a contract violation and panics.
func (c *Channel[T]) Receive() Task[T] {
	f, _ := newFrame(nil)
	f.step = func(f *frame) result {
		c.mu.Lock()
		if c.recv != nil {
			c.mu.Unlock()
			panic("corun(Channel): concurrent receive")
		}
		if c.head < len(c.items) {
			v := c.items[c.head]
			var zero T
			c.items[c.head] = zero
			c.head++
			if c.head == len(c.items) {
				c.items = c.items[:0]
				c.head = 0
			}
			c.mu.Unlock()
			return f.complete(v, nil)
		}
		if c.closed {
			c.mu.Unlock()
			return f.complete(nil, ErrClosed)
		}
		c.recv = f
		c.mu.Unlock()
		return result{action: doSuspend}
	}
	return Task[T]{f}
}
