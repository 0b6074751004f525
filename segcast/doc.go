// Package segcast runs a continuous external broadcast session as a
// sequence of seamless segments, rotating the live stream across two
// round-robin channel slots so that one segment can go live while the
// next is being prepared.
//
// The heart of the package is [Loop], an actor: a [corun.Channel] of
// commands consumed by a single task, one command at a time. Start,
// Stop and SegmentNow are fire-and-forget entry points callable from
// any goroutine; they only enqueue. Each command's workflow is awaited
// to completion, success or failure, before the next command is read,
// so no two handlers ever run concurrently and all of the actor's
// state (slot index, bound broadcasts) needs no locking.
//
// A failed workflow is reported through the configured logger and
// metrics scope and never terminates the actor; the next command is
// processed normally. Shutdown closes the command channel and joins
// the actor task, guaranteeing it has fully unwound.
package segcast
