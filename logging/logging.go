// Package logging provides a zerolog-backed call hook for the envelope
// client. Attach it with core.WithHook to get one structured event per
// API call start and completion.
package logging

import (
	"github.com/rs/zerolog"

	"github.com/slacktime/slacktime-go/core"
)

// Hook emits structured log events for API calls.
type Hook struct {
	logger zerolog.Logger
}

// NewHook returns a call hook writing through the given logger.
func NewHook(logger zerolog.Logger) *Hook {
	return &Hook{logger: logger}
}

// OnCallStart logs the dispatch of an API call.
func (h *Hook) OnCallStart(ev core.CallStartEvent) {
	h.logger.Debug().
		Str("call_id", ev.ID).
		Str("verb", ev.Verb).
		Str("method", ev.Path).
		Msg("api call started")
}

// OnCallEnd logs the completion of an API call, at error level when the
// call failed.
func (h *Hook) OnCallEnd(ev core.CallEndEvent) {
	e := h.logger.Debug()
	if ev.Err != nil {
		e = h.logger.Error().Err(ev.Err)
	}
	e.Str("call_id", ev.ID).
		Str("verb", ev.Verb).
		Str("method", ev.Path).
		Int("status", ev.Status).
		Dur("duration", ev.End.Sub(ev.Start)).
		Msg("api call finished")
}
