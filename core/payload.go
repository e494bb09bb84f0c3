package core

import (
	"net/url"
	"strconv"
	"strings"
)

// Payload is the mapping of parameter names to values sent as a request's
// query string or form body. Required parameters are always set by the
// calling method; optional parameters are set only when the caller supplied
// a value, so an omitted optional never produces a key.
type Payload map[string][]string

// Set sets the key to a single string value.
func (p Payload) Set(key, value string) {
	p[key] = []string{value}
}

// SetInt sets the key to the decimal representation of value.
func (p Payload) SetInt(key string, value int) {
	p.Set(key, strconv.Itoa(value))
}

// SetFloat sets the key to the representation of value. Slack timestamps
// ("1405894322.002768") round-trip through this form.
func (p Payload) SetFloat(key string, value float64) {
	p.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// SetBool sets the key to "true" or "false".
func (p Payload) SetBool(key string, value bool) {
	p.Set(key, strconv.FormatBool(value))
}

// SetCSV sets the key to the comma-joined values. Empty slices set nothing.
func (p Payload) SetCSV(key string, values []string) {
	if len(values) == 0 {
		return
	}
	p.Set(key, strings.Join(values, ","))
}

// SetJSON sets the key to the JSON encoding of value. Strings pass through
// unchanged so pre-encoded JSON is not double-encoded.
func (p Payload) SetJSON(key string, value any) error {
	s, err := JSONEncoded(value)
	if err != nil {
		return err
	}
	p.Set(key, s)
	return nil
}

// Has reports whether the key is present.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Get returns the first value set for the key, or the empty string.
func (p Payload) Get(key string) string {
	return url.Values(p).Get(key)
}

// Encode returns the URL-encoded form of the payload.
func (p Payload) Encode() string {
	return url.Values(p).Encode()
}

// clone returns a copy of the payload, never nil. The client clones before
// injecting the token so a caller-held payload is not mutated.
func (p Payload) clone() Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = append([]string(nil), v...)
	}
	return out
}
