package core

import (
	"encoding/json"
	"net/http"
)

// Envelope is the decorated response returned by every API call: the raw
// decoded body plus the derived success flag and error code. An Envelope is
// created once per call and never mutated afterwards.
type Envelope struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Raw is the undecoded response body.
	Raw []byte

	// Body is the decoded response body.
	Body map[string]any

	// Successful is the body's declared "ok" flag.
	Successful bool

	// ErrorCode is the body's "error" field; empty on success.
	ErrorCode string
}

// decorate decodes the body and computes the derived fields. A body that is
// not well-formed JSON is a hard failure: the decoding error propagates
// unchanged and no envelope is produced.
func decorate(resp *http.Response, raw []byte) (*Envelope, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}

	ok, _ := body["ok"].(bool)
	code, _ := body["error"].(string)

	return &Envelope{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		Body:       body,
		Successful: ok,
		ErrorCode:  code,
	}, nil
}

// Decode unmarshals the raw response body into v, for callers that prefer
// a typed view over the Body map.
func (e *Envelope) Decode(v any) error {
	return json.Unmarshal(e.Raw, v)
}

// String returns a field from the body as a string, or the empty string
// when absent or of another type. Convenient for top-level fields like
// "url" from rtm.connect or "permalink" from chat.getPermalink.
func (e *Envelope) String(key string) string {
	s, _ := e.Body[key].(string)
	return s
}
