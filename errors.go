package corun

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrClosed is returned by a receive once a [Channel] is closed and
	// its queue has drained. It is a terminal signal, not a failure.
	ErrClosed = errors.New("corun: channel closed")

	// ErrArenaBusy is reported when a task chain is rooted in a
	// [FrameArena] that still backs a live chain.
	ErrArenaBusy = errors.New("corun: frame arena in use")

	// ErrArenaOverflow is reported when a chain outgrows the fixed
	// capacity of its [FrameArena] and fallback is not enabled.
	ErrArenaOverflow = errors.New("corun: frame arena capacity exhausted")
)

// A PanicError is the error a task completes with when one of its steps
// panics. It captures the panic value and the stack at the point of
// the panic, so that the failure survives the trip across suspension
// points and comes out of [Join] or a [Catch] intact.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("corun: task panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error, so that errors.Is
// and errors.As see through recovered panics.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
