package core

import (
	"errors"
	"fmt"
)

// UnknownErrorCode is the sentinel code used when the server reports a
// failed call without naming an error. The Slack protocol does not
// guarantee an "error" field on every "ok": false body.
const UnknownErrorCode = "unknown_error"

// APIError is the error kind for every failure the server reports through
// the response envelope. The Code field carries the server's literal error
// string (e.g. "channel_not_found"), so callers match on the code instead
// of on a pre-enumerated type per error:
//
//	_, err := client.Chat.PostMessage(ctx, "C1", "hi", nil)
//	if errors.Is(err, &core.APIError{Code: "channel_not_found"}) {
//	    // handle missing channel
//	}
type APIError struct {
	// URL is the full request URL of the failed call.
	URL string

	// Code is the error string the server returned, or UnknownErrorCode
	// when the failure carried no error field.
	Code string

	// Docs is the documentation page for the method that failed.
	Docs string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("request to %s failed with %q (see %s#errors)", e.URL, e.Code, e.Docs)
}

// Is reports whether target is an APIError with the same code, enabling
// errors.Is matching by error code. A target with an empty Code matches
// any APIError.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// ErrorCode returns the server error code carried by err, or the empty
// string when err is not an APIError.
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// IsCode reports whether err is an APIError carrying the given code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
