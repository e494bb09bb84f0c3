package core

import (
	"time"

	"github.com/google/uuid"
)

// CallStartEvent is emitted before a request is dispatched.
type CallStartEvent struct {
	// ID uniquely identifies the call so start and end events can be
	// correlated.
	ID string

	// Verb is the HTTP method ("GET" or "POST").
	Verb string

	// Path is the API method path (e.g. "chat.postMessage").
	Path string

	// URL is the full request URL.
	URL string

	// Start is when the call began.
	Start time.Time
}

// CallEndEvent is emitted after the failure check, whether the call
// succeeded or not.
type CallEndEvent struct {
	ID    string
	Verb  string
	Path  string
	URL   string
	Start time.Time
	End   time.Time

	// Status is the HTTP status code, or zero when the transport failed
	// before a response arrived.
	Status int

	// Err is the call's outcome: nil, a transport/decode error, or an
	// *APIError for a server-reported failure.
	Err error
}

// CallHook receives an event pair for every API call made through a
// Client. Implementations must be safe for concurrent calls.
type CallHook interface {
	OnCallStart(CallStartEvent)
	OnCallEnd(CallEndEvent)
}

// NoopCallHook is a CallHook that does nothing. It is the default.
type NoopCallHook struct{}

// OnCallStart does nothing.
func (NoopCallHook) OnCallStart(CallStartEvent) {}

// OnCallEnd does nothing.
func (NoopCallHook) OnCallEnd(CallEndEvent) {}

// newCallID returns a fresh correlation ID for a call event pair.
func newCallID() string {
	return uuid.NewString()
}
