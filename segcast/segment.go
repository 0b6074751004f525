package segcast

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aruvin/corun"
)

// handleSegment rotates the session onto the next slot. The workflow
// runs as one strictly sequential task chain; it is built lazily, each
// step constructed only after the previous one has completed, so no
// external call is issued ahead of its turn.
func (l *Loop) handleSegment() corun.Task[struct{}] {
	if !l.active {
		l.log.Info("segment_skipped", "reason", "session_not_active")
		return corun.Pure(struct{}{})
	}
	if l.stop.Canceled() {
		l.log.Info("segment_skipped", "reason", "stop_requested")
		return corun.Pure(struct{}{})
	}
	started := time.Now()
	next := l.slot
	return corun.Map(
		corun.Bind(
			corun.Then(l.beginSegment(), corun.Hop(l.pool)),
			func(struct{}) corun.Task[struct{}] {
				return l.segment(next)
			},
		),
		func(struct{}) (struct{}, error) {
			l.scope.Timer("segment_latency").Record(time.Since(started))
			l.scope.Counter("segments_completed").Inc(1)
			l.log.Info("segment_completed", "slot", next, "broadcast", l.live)
			return struct{}{}, nil
		},
	)
}

// beginSegment roots the segment chain in the arena when one is
// configured. Continuations built as the workflow progresses are
// adopted into the same arena, so the whole command runs out of the
// fixed slab. The actor is the arena's only client and runs one chain
// at a time, so busy errors here indicate a leaked chain and are left
// to fail the command loudly.
func (l *Loop) beginSegment() corun.Task[struct{}] {
	if l.arena == nil {
		return corun.Pure(struct{}{})
	}
	return corun.NewIn(l.arena, func() (struct{}, error) {
		return struct{}{}, nil
	})
}

func (l *Loop) segment(next int) corun.Task[struct{}] {
	streamID := l.cfg.StreamIDs[next]
	return corun.Bind(l.freshToken(), func(tok Token) corun.Task[struct{}] {
		return corun.Bind(l.retireStale(tok, 0), func(struct{}) corun.Task[struct{}] {
			return corun.Bind(l.create(tok), func(b Broadcast) corun.Task[struct{}] {
				return corun.Bind(l.thumbnail(tok, b), func(struct{}) corun.Task[struct{}] {
					return corun.Bind(step("bind", l.api.BindStream(tok, b.ID, streamID)), func(struct{}) corun.Task[struct{}] {
						return corun.Bind(step("switch", l.out.SwitchTo(next)), func(struct{}) corun.Task[struct{}] {
							return corun.Bind(l.pollActive(tok, streamID, 0), func(struct{}) corun.Task[struct{}] {
								return corun.Map(l.goLive(tok, b.ID), func(struct{}) (struct{}, error) {
									// The slot advances only on full success; any
									// failure above leaves the rotation where it was.
									l.bound[next] = b.ID
									l.live = b.ID
									l.slot = (next + 1) % len(l.bound)
									return struct{}{}, nil
								})
							})
						})
					})
				})
			})
		})
	})
}

// freshToken reuses the cached credential while it has comfortably more
// than the skew left, and refreshes otherwise. A revoked refresh clears
// the stored credentials and fails the workflow.
func (l *Loop) freshToken() corun.Task[Token] {
	if tok, ok := l.tokens.Cached(); ok && !tok.Stale(time.Now().Add(l.cfg.TokenSkew)) {
		return corun.Pure(tok)
	}
	return step("token", corun.Catch(l.tokens.Refresh(), func(err error) corun.Task[Token] {
		if errors.Is(err, ErrTokenRevoked) {
			l.tokens.Clear()
			l.log.Warn("credentials_cleared")
		}
		return corun.Fail[Token](err)
	}))
}

// retireStale deletes any bound broadcast that is no longer the live
// one, slot by slot.
func (l *Loop) retireStale(tok Token, slot int) corun.Task[struct{}] {
	if slot >= len(l.bound) {
		return corun.Pure(struct{}{})
	}
	id := l.bound[slot]
	if id == "" || id == l.live {
		return l.retireStale(tok, slot+1)
	}
	return corun.Bind(step("retire", l.api.Delete(tok, id)), func(struct{}) corun.Task[struct{}] {
		l.bound[slot] = ""
		l.log.Info("broadcast_retired", "slot", slot, "broadcast", id)
		return l.retireStale(tok, slot+1)
	})
}

func (l *Loop) create(tok Token) corun.Task[Broadcast] {
	req := BroadcastRequest{
		RequestID: uuid.NewString(),
		Title:     l.cfg.Title,
	}
	return step("create", l.api.Create(tok, req))
}

// thumbnail is a best-effort step: a failure is logged and swallowed,
// the segment proceeds without the thumbnail.
func (l *Loop) thumbnail(tok Token, b Broadcast) corun.Task[struct{}] {
	if len(l.cfg.Thumbnail) == 0 {
		return corun.Pure(struct{}{})
	}
	return corun.Catch(l.api.SetThumbnail(tok, b.ID, l.cfg.Thumbnail), func(err error) corun.Task[struct{}] {
		l.log.Warn("thumbnail_failed", "broadcast", b.ID, "error", err)
		return corun.Pure(struct{}{})
	})
}

// pollActive polls the bound stream until it reports active, up to the
// configured number of attempts with a fixed delay between them. The
// stop token is checked before every attempt, so StopSession cuts a
// long poll short at the next boundary.
func (l *Loop) pollActive(tok Token, streamID string, attempt int) corun.Task[struct{}] {
	if l.stop.Canceled() {
		return corun.Fail[struct{}](&StepError{Step: "poll", Err: ErrStopRequested})
	}
	if attempt >= l.cfg.PollAttempts {
		return corun.Fail[struct{}](&StepError{Step: "poll", Err: ErrStreamNotActive})
	}
	return corun.Bind(step("poll", l.api.StreamStatus(tok, streamID)), func(st StreamStatus) corun.Task[struct{}] {
		if st == StreamActive {
			return corun.Pure(struct{}{})
		}
		return corun.Bind(corun.Sleep(l.timer, l.cfg.PollInterval), func(struct{}) corun.Task[struct{}] {
			return l.pollActive(tok, streamID, attempt+1)
		})
	})
}

// goLive walks the new broadcast through testing and, after the settle
// delay, live.
func (l *Loop) goLive(tok Token, broadcastID string) corun.Task[struct{}] {
	return corun.Bind(step("transition", l.api.Transition(tok, broadcastID, BroadcastTesting)), func(struct{}) corun.Task[struct{}] {
		return corun.Bind(corun.Sleep(l.timer, l.cfg.TransitionDelay), func(struct{}) corun.Task[struct{}] {
			return step("transition", l.api.Transition(tok, broadcastID, BroadcastLive))
		})
	})
}

// step tags a task's failure with the workflow step it came from,
// leaving already-tagged errors alone.
func step[T any](name string, t corun.Task[T]) corun.Task[T] {
	return corun.Catch(t, func(err error) corun.Task[T] {
		var se *StepError
		if errors.As(err, &se) {
			return corun.Fail[T](err)
		}
		return corun.Fail[T](&StepError{Step: name, Err: err})
	})
}
