package core

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMakeFileFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("on disk"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r, err := MakeFile(path)
	if err != nil {
		t.Fatalf("MakeFile() error = %v", err)
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "on disk" {
		t.Errorf("contents = %q, want %q", data, "on disk")
	}
}

func TestMakeFileMissingPath(t *testing.T) {
	_, err := MakeFile(filepath.Join(t.TempDir(), "missing.txt"))
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error = %v, want *os.PathError", err)
	}
}

func TestMakeFilePassesThroughReader(t *testing.T) {
	in := strings.NewReader("already a stream")

	r, err := MakeFile(in)
	if err != nil {
		t.Fatalf("MakeFile() error = %v", err)
	}
	if r != io.Reader(in) {
		t.Error("reader was not passed through unchanged")
	}
}

func TestMakeFileRejectsOtherTypes(t *testing.T) {
	if _, err := MakeFile(42); err == nil {
		t.Error("MakeFile(42) error = nil, want error")
	}
}

func TestCommaSeparated(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string unchanged", "U1,U2", "U1,U2"},
		{"slice joined", []string{"U1", "U2", "U3"}, "U1,U2,U3"},
		{"single element", []string{"U1"}, "U1"},
		{"empty slice", []string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommaSeparated(tt.input)
			if err != nil {
				t.Fatalf("CommaSeparated() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CommaSeparated() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommaSeparatedIdempotent(t *testing.T) {
	once, err := CommaSeparated([]string{"a", "b"})
	if err != nil {
		t.Fatalf("CommaSeparated() error = %v", err)
	}
	twice, err := CommaSeparated(once)
	if err != nil {
		t.Fatalf("CommaSeparated() error = %v", err)
	}
	if once != twice {
		t.Errorf("second pass = %q, want %q", twice, once)
	}
}

func TestCommaSeparatedRejectsOtherTypes(t *testing.T) {
	if _, err := CommaSeparated(42); err == nil {
		t.Error("CommaSeparated(42) error = nil, want error")
	}
}

func TestJSONEncoded(t *testing.T) {
	got, err := JSONEncoded(map[string]any{"type": "modal"})
	if err != nil {
		t.Fatalf("JSONEncoded() error = %v", err)
	}
	if want := `{"type":"modal"}`; got != want {
		t.Errorf("JSONEncoded() = %q, want %q", got, want)
	}
}

func TestJSONEncodedStringPassthrough(t *testing.T) {
	in := `{"already": "encoded"}`
	got, err := JSONEncoded(in)
	if err != nil {
		t.Fatalf("JSONEncoded() error = %v", err)
	}
	if got != in {
		t.Errorf("JSONEncoded() = %q, want %q", got, in)
	}
}

func TestJSONEncodedRejectsScalars(t *testing.T) {
	for _, v := range []any{nil, true, 42, 3.14, []byte("bytes")} {
		if _, err := JSONEncoded(v); err == nil {
			t.Errorf("JSONEncoded(%T) error = nil, want error", v)
		}
	}
}
