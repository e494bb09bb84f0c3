package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// MakeFile normalizes a file parameter into a byte stream for multipart
// submission. A string is treated as a filesystem path and opened; an
// io.Reader is passed through unchanged. The caller owns the lifetime of
// the returned stream: MakeFile never closes what it opens, and a
// nonexistent path surfaces the *os.PathError from os.Open rather than an
// empty stream.
func MakeFile(v any) (io.Reader, error) {
	switch f := v.(type) {
	case string:
		return os.Open(f)
	case io.Reader:
		return f, nil
	default:
		return nil, fmt.Errorf("file parameter must be a path string or io.Reader, got %T", v)
	}
}

// CommaSeparated normalizes a list-valued parameter into the comma-joined
// form the API expects. Already-joined strings pass through unchanged, so
// the conversion is idempotent.
func CommaSeparated(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []string:
		return strings.Join(s, ","), nil
	case []fmt.Stringer:
		parts := make([]string, len(s))
		for i, p := range s {
			parts[i] = p.String()
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("comma-separated parameter must be a string or string slice, got %T", v)
	}
}

// JSONEncoded normalizes a structured parameter (blocks, attachments,
// views, ...) into its JSON string form. Strings pass through unchanged so
// callers holding pre-encoded JSON are not double-encoded. Scalars other
// than strings are rejected: they indicate a parameter passed to the wrong
// slot.
func JSONEncoded(v any) (string, error) {
	switch v.(type) {
	case string:
		return v.(string), nil
	case nil, bool, int, int64, float32, float64, []byte:
		return "", fmt.Errorf("structured parameter must be a string, map, slice, or struct, got %T", v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
