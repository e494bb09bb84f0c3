package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	app := NewApp(WithIO(nil, &stdout, nil))
	app.root.SetArgs([]string{"version"})

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "slacktime dev") {
		t.Errorf("output = %q, want version line", out)
	}
	if !strings.Contains(out, "go version:") {
		t.Errorf("output = %q, want go version line", out)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	var stdout bytes.Buffer
	app := NewApp(WithIO(nil, &stdout, nil))
	app.root.SetArgs([]string{"version", "--json"})

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, `"version":"dev"`) {
		t.Errorf("output = %q, want JSON version field", out)
	}
}
