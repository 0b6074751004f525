package segcast

import (
	"io"
	"log/slog"
	"time"

	"github.com/uber-go/tally/v4"

	"github.com/aruvin/corun"
)

// Config carries the tunables of a [Loop].
type Config struct {
	// StreamIDs are the two persistent stream identities, one per
	// round-robin slot.
	StreamIDs [2]string

	// Title is the title given to each created broadcast.
	Title string

	// Thumbnail, if non-empty, is set on each created broadcast.
	// Thumbnail failures are tolerated: they are logged, not fatal.
	Thumbnail []byte

	// TokenSkew treats a cached token expiring within the skew as
	// already stale, forcing a refresh before the workflow starts
	// using it.
	TokenSkew time.Duration

	// PollAttempts bounds how many times a segment polls the bound
	// stream for "active" before giving up.
	PollAttempts int

	// PollInterval is the fixed delay between poll attempts.
	PollInterval time.Duration

	// TransitionDelay is the fixed delay between broadcast lifecycle
	// transitions.
	TransitionDelay time.Duration

	// UseArena roots each command handler's task chain in a bounded
	// [corun.FrameArena] instead of the heap. The actor is a single
	// serialized producer of chains, which is exactly the shape the
	// arena supports.
	UseArena bool

	// ArenaFrames is the arena capacity when UseArena is set.
	ArenaFrames int

	// ArenaFallback lets an overfull arena degrade to heap allocation.
	// Off by default: a command whose chain outgrows the arena fails
	// loudly with [corun.ErrArenaOverflow] and is reported like any
	// other command failure.
	ArenaFallback bool

	// Logger receives workflow events. Defaults to a discarding
	// logger.
	Logger *slog.Logger

	// Metrics receives segment counters and timers. Defaults to a
	// no-op scope.
	Metrics tally.Scope
}

func (c Config) withDefaults() Config {
	if c.TokenSkew == 0 {
		c.TokenSkew = 30 * time.Second
	}
	if c.PollAttempts == 0 {
		c.PollAttempts = 10
	}
	if c.PollInterval == 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.TransitionDelay == 0 {
		c.TransitionDelay = 3 * time.Second
	}
	if c.ArenaFrames == 0 {
		c.ArenaFrames = 64
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Metrics == nil {
		c.Metrics = tally.NoopScope
	}
	return c
}

// Deps bundles the external collaborators a [Loop] schedules onto.
type Deps struct {
	Tokens TokenSource
	API    Broadcaster
	Output Output

	// Pool is where command workflows run their blocking-ish work;
	// every handler hops onto it first thing.
	Pool corun.Scheduler

	// Timer supplies the fixed delays between polls and transitions.
	Timer corun.Timer
}
