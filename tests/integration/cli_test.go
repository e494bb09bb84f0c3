//go:build integration

package integration

import (
	"strings"
	"testing"
)

func TestCLIVersion(t *testing.T) {
	result := runCLI(t, "version")

	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %s", result.ExitCode, result.Stderr)
	}
	if !strings.Contains(result.Stdout, "slacktime") {
		t.Errorf("stdout = %q, want version line", result.Stdout)
	}
}

func TestCLIAuthTest(t *testing.T) {
	skipIfNoToken(t)

	result := runCLI(t, "auth", "test")

	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %s", result.ExitCode, result.Stderr)
	}
	if !strings.Contains(result.Stdout, "authenticated as") {
		t.Errorf("stdout = %q, want identity line", result.Stdout)
	}
}

func TestCLIUnknownCommand(t *testing.T) {
	result := runCLI(t, "does-not-exist")

	if result.ExitCode == 0 {
		t.Error("exit code = 0, want nonzero")
	}
}
