package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{
		URL:  "https://slack.com/api/chat.postMessage",
		Code: "channel_not_found",
		Docs: "https://api.slack.com/methods/chat.postMessage",
	}

	got := err.Error()
	want := `request to https://slack.com/api/chat.postMessage failed with "channel_not_found" (see https://api.slack.com/methods/chat.postMessage#errors)`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAPIErrorIs(t *testing.T) {
	err := &APIError{URL: "https://slack.com/api/chat.postMessage", Code: "is_archived"}

	if !errors.Is(err, &APIError{Code: "is_archived"}) {
		t.Error("same code: errors.Is = false, want true")
	}
	if errors.Is(err, &APIError{Code: "channel_not_found"}) {
		t.Error("other code: errors.Is = true, want false")
	}
	if !errors.Is(err, &APIError{}) {
		t.Error("empty code: errors.Is = false, want true")
	}
	if errors.Is(err, errors.New("is_archived")) {
		t.Error("non-APIError target: errors.Is = true, want false")
	}
}

func TestAPIErrorIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("posting announcement: %w", &APIError{Code: "not_in_channel"})

	if !errors.Is(err, &APIError{Code: "not_in_channel"}) {
		t.Error("wrapped: errors.Is = false, want true")
	}
	if got := ErrorCode(err); got != "not_in_channel" {
		t.Errorf("ErrorCode() = %q, want %q", got, "not_in_channel")
	}
}

func TestErrorCodeNonAPIError(t *testing.T) {
	if got := ErrorCode(errors.New("plain")); got != "" {
		t.Errorf("ErrorCode() = %q, want empty", got)
	}
	if IsCode(nil, "anything") {
		t.Error("IsCode(nil) = true, want false")
	}
}
