// Package corun is a minimal asynchronous task runtime.
//
// Goroutines already solve the problem of running things concurrently,
// so this library does not try to be a scheduler. It implements a small
// set of primitives for expressing sequential asynchronous workflows as
// chains of lazy, single-owner computations:
//
//   - [Task]: a single-owner handle to a suspendable computation that
//     eventually produces a value or an error;
//   - [Channel]: a multiple-producer single-consumer mailbox that bridges
//     arbitrary goroutines to one suspended consumer;
//   - [FrameArena]: an opt-in, bounded allocator that backs one task chain
//     at a time without per-frame heap allocations;
//   - [Join] and [Launch]: bridges from task-land back to ordinary
//     blocking code.
//
// # Ownership
//
// A Task has exactly one owner. Every combinator ([Bind], [Then], [Map],
// [Catch]) and every terminal operation ([Launch], [Join], [Task.Start],
// [Task.Discard]) consumes its argument handle; using a handle twice
// panics. Results are only observable through the await protocol or
// through [Join], never by polling a task from the outside.
//
// # Resumption
//
// Tasks are lazy. Nothing runs until a task is started, and a started
// task runs on whatever goroutine resumes it: a [Channel.Send] resumes
// a suspended consumer on the sending goroutine, a [Timer] resumes on
// the timer goroutine, and [Hop] moves execution onto a [Scheduler].
// Thread affinity is therefore explicit at each suspension point rather
// than a property of the runtime.
//
// Chains of awaited tasks complete by symmetric transfer: when a task
// finishes, control moves directly to its registered continuation inside
// a flat trampoline loop, so the goroutine stack stays O(1) no matter how
// long the chain is.
//
// # Errors
//
// Errors propagate to the awaiter like values do. A panic inside a task
// step is captured into a [*PanicError], carrying the panic value and
// stack, and then propagates the same way. No error is ever swallowed:
// whatever a chain does not [Catch] comes out of [Join].
package corun
