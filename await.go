package corun

import "sync/atomic"

// Gate states for the park/fire handshake between a suspending step
// and an external resumption that may arrive on another goroutine.
const (
	gateIdle   uint32 = iota // step still arming
	gateParked               // step suspended, waiting to be fired
	gateFired                // fired before the step could suspend
	gateSpent                // fired after parking; resumption consumed
)

// AwaitFunc returns a task that suspends until an external event fires.
//
// When the task runs, arm is called with a one-shot fire callback.
// Whoever calls fire delivers the result and resumes the task on the
// calling goroutine; this is the primitive from which timers, scheduler
// hops and other external suspension points are built. The callback is
// affine: firing it a second time panics.
//
// fire may be called from any goroutine, including synchronously from
// inside arm, in which case the task continues without suspending.
func AwaitFunc[T any](arm func(fire func(v T, err error))) Task[T] {
	f, _ := newFrame(nil)
	f.step = func(f *frame) result {
		var gate atomic.Uint32
		f.step = (*frame).forward
		arm(func(v T, err error) {
			for {
				switch gate.Load() {
				case gateIdle:
					f.inValue, f.inErr = v, err
					if gate.CompareAndSwap(gateIdle, gateFired) {
						return // Step not yet parked; it continues inline.
					}
				case gateParked:
					if gate.CompareAndSwap(gateParked, gateSpent) {
						f.inValue, f.inErr = v, err
						resume(f)
						return
					}
				default:
					panic("corun: suspension fired twice")
				}
			}
		})
		if gate.CompareAndSwap(gateIdle, gateParked) {
			return result{action: doSuspend}
		}
		// Fired during arm: consume the resumption and continue.
		gate.Store(gateSpent)
		return f.forward()
	}
	return Task[T]{f}
}
