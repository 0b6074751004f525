package segcast

import (
	"errors"
	"log/slog"

	"github.com/uber-go/tally/v4"

	"github.com/aruvin/corun"
)

// A Loop is the session actor. Its mailbox is a [corun.Channel] of
// commands; a single recursive task drains it, dispatching one command
// at a time and awaiting each handler to completion before reading the
// next. All mutable session state below the cmds channel is owned by
// that task and touched by nothing else.
type Loop struct {
	cfg    Config
	tokens TokenSource
	api    Broadcaster
	out    Output
	pool   corun.Scheduler
	timer  corun.Timer
	log    *slog.Logger
	scope  tally.Scope

	cmds  corun.Channel[command]
	stop  corun.CancelToken
	arena *corun.FrameArena
	done  *corun.Completion[struct{}]

	// Actor-owned session state. slot is the channel slot the NEXT
	// segment will bind; bound holds the broadcast currently bound to
	// each slot; live is the broadcast the output is showing now.
	slot   int
	bound  [2]string
	live   string
	active bool
}

// New creates a stopped Loop. Call [Loop.Run] to start draining
// commands.
func New(cfg Config, deps Deps) *Loop {
	cfg = cfg.withDefaults()
	l := &Loop{
		cfg:    cfg,
		tokens: deps.Tokens,
		api:    deps.API,
		out:    deps.Output,
		pool:   deps.Pool,
		timer:  deps.Timer,
		log:    cfg.Logger,
		scope:  cfg.Metrics,
	}
	if cfg.UseArena {
		l.arena = corun.NewFrameArena(cfg.ArenaFrames)
		if cfg.ArenaFallback {
			l.arena.AllowFallback()
		}
	}
	return l
}

// Run launches the actor task. The task immediately suspends on the
// empty mailbox; commands sent afterwards resume it.
func (l *Loop) Run() {
	l.done = corun.Launch(l.loop())
}

// Shutdown closes the mailbox and blocks until the actor task has
// fully unwound. Commands already queued are still dispatched;
// commands sent after Shutdown are dropped. Shutdown before Run just
// closes the mailbox.
func (l *Loop) Shutdown() error {
	l.cmds.Close()
	if l.done == nil {
		return nil
	}
	_, err := l.done.Join()
	return err
}

// StartSession begins a broadcasting session: it clears the stop flag
// and queues a start followed by the session's first segment.
// Fire-and-forget, callable from any goroutine.
func (l *Loop) StartSession() {
	l.stop.Reset()
	l.send(cmdStart)
}

// StopSession requests the session end. The stop flag is set before
// the command is queued, so a segment workflow already in flight sees
// it at its next cancellation check point and terminates early.
// Fire-and-forget, callable from any goroutine.
func (l *Loop) StopSession() {
	l.stop.Cancel()
	l.send(cmdStop)
}

// SegmentNow queues an immediate segment rotation. Fire-and-forget,
// callable from any goroutine.
func (l *Loop) SegmentNow() {
	l.send(cmdSegment)
}

func (l *Loop) send(cmd command) {
	if !l.cmds.Send(cmd) {
		l.log.Warn("command_dropped", "command", cmd.String())
	}
}

// loop is the actor body: one turn per command, recursing only after
// the previous turn, its handler included, has fully completed. Each
// turn's error boundary closes before the next turn's frames exist, so
// the live chain stays a constant handful of frames no matter how many
// commands flow through.
func (l *Loop) loop() corun.Task[struct{}] {
	return corun.Bind(l.turn(), func(more bool) corun.Task[struct{}] {
		if !more {
			return corun.Pure(struct{}{})
		}
		return l.loop()
	})
}

// turn receives one command, dispatches it, and reports whether the
// mailbox is still open. Handler failures are logged and counted here;
// they never escape the turn.
func (l *Loop) turn() corun.Task[bool] {
	return corun.Catch(
		corun.Bind(l.cmds.Receive(), func(cmd command) corun.Task[bool] {
			return corun.Map(l.dispatch(cmd), func(struct{}) (bool, error) {
				return true, nil
			})
		}),
		func(err error) corun.Task[bool] {
			if errors.Is(err, corun.ErrClosed) {
				return corun.Pure(false)
			}
			return corun.Fail[bool](err)
		},
	)
}

// dispatch runs one command's handler inside an error boundary. The
// boundary is built before the handler and never takes frames from the
// arena, so even an arena overflow inside a handler is caught here and
// the loop keeps running.
func (l *Loop) dispatch(cmd command) corun.Task[struct{}] {
	t := corun.Bind(corun.Pure(cmd), func(cmd command) corun.Task[struct{}] {
		switch cmd {
		case cmdStart:
			return l.handleStart()
		case cmdStop:
			return l.handleStop()
		case cmdSegment:
			return l.handleSegment()
		}
		return corun.Pure(struct{}{})
	})
	return corun.Catch(t, func(err error) corun.Task[struct{}] {
		step := "unknown"
		var se *StepError
		if errors.As(err, &se) {
			step = se.Step
		}
		l.log.Error("command_failed",
			"command", cmd.String(),
			"step", step,
			"error", err,
		)
		l.scope.Tagged(map[string]string{
			"command": cmd.String(),
			"step":    step,
		}).Counter("command_failures").Inc(1)
		return corun.Pure(struct{}{})
	})
}

func (l *Loop) handleStart() corun.Task[struct{}] {
	if l.active {
		l.log.Info("session_already_active")
		return corun.Pure(struct{}{})
	}
	l.active = true
	l.log.Info("session_starting")
	// The first segment goes through the mailbox like any other, so
	// a Stop queued between Start and the segment wins.
	l.send(cmdSegment)
	return corun.Pure(struct{}{})
}

func (l *Loop) handleStop() corun.Task[struct{}] {
	if !l.active {
		l.log.Info("session_not_active")
		return corun.Pure(struct{}{})
	}
	return corun.Map(l.out.Stop(), func(struct{}) (struct{}, error) {
		l.active = false
		l.live = ""
		l.log.Info("session_stopped")
		return struct{}{}, nil
	})
}
