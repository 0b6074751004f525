package segcast

import (
	"errors"
	"time"

	"github.com/aruvin/corun"
)

// Sentinel errors for workflow outcomes.
var (
	// ErrTokenRevoked indicates the refresh token itself has been
	// revoked. A [TokenSource.Refresh] failing with it forces the
	// stored credentials to be cleared; the current workflow is
	// always fatal.
	ErrTokenRevoked = errors.New("segcast: refresh token revoked")

	// ErrStopRequested indicates a workflow observed the stop token
	// at a cancellation check point and terminated early.
	ErrStopRequested = errors.New("segcast: stop requested")

	// ErrStreamNotActive indicates the bound stream never reported
	// active within the configured number of poll attempts.
	ErrStreamNotActive = errors.New("segcast: stream never became active")
)

// A StepError records which workflow step failed, for machine-readable
// failure reporting. It wraps the underlying cause.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return "segcast: step " + e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }

// A Token is an access credential for the broadcast API.
type Token struct {
	Access string
	Expiry time.Time
}

// Stale reports whether the token should not be trusted past now.
func (t Token) Stale(now time.Time) bool {
	return t.Access == "" || !now.Before(t.Expiry)
}

// A TokenSource stores and refreshes access credentials. Cached and
// Clear must be safe for concurrent use; the actor serializes its own
// calls, but credentials may be read by other components.
type TokenSource interface {
	// Cached returns the stored token, if any.
	Cached() (Token, bool)
	// Refresh obtains a fresh token, storing it on success. Fails
	// with [ErrTokenRevoked] when the refresh credential is no
	// longer valid.
	Refresh() corun.Task[Token]
	// Clear discards the stored credentials.
	Clear()
}

// BroadcastState is a lifecycle state of an external broadcast.
type BroadcastState string

const (
	BroadcastTesting  BroadcastState = "testing"
	BroadcastLive     BroadcastState = "live"
	BroadcastComplete BroadcastState = "complete"
)

// StreamStatus is the reported health of a bound stream.
type StreamStatus string

const (
	StreamIdle     StreamStatus = "idle"
	StreamStarting StreamStatus = "starting"
	StreamActive   StreamStatus = "active"
)

// A Broadcast is the external session object a segment goes live on.
type Broadcast struct {
	ID    string
	Title string
}

// A BroadcastRequest describes a broadcast to create. RequestID is a
// client-generated idempotency key.
type BroadcastRequest struct {
	RequestID string
	Title     string
}

// A Broadcaster is the external resource API client. Every operation
// may suspend on network I/O and is awaited as an ordinary task.
type Broadcaster interface {
	Create(tok Token, req BroadcastRequest) corun.Task[Broadcast]
	Delete(tok Token, broadcastID string) corun.Task[struct{}]
	SetThumbnail(tok Token, broadcastID string, image []byte) corun.Task[struct{}]
	BindStream(tok Token, broadcastID, streamID string) corun.Task[struct{}]
	Transition(tok Token, broadcastID string, to BroadcastState) corun.Task[struct{}]
	StreamStatus(tok Token, streamID string) corun.Task[StreamStatus]
}

// An Output switches the live video output between the two physical
// channel slots and stops it on demand.
type Output interface {
	SwitchTo(slot int) corun.Task[struct{}]
	Stop() corun.Task[struct{}]
}
