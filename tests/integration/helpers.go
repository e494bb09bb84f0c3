//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"testing"
)

// isCI returns true if running in a CI environment.
func isCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "TRAVIS", "JENKINS_URL"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// skipIfNoToken skips the test if SLACK_API_TOKEN is not set. In CI, it
// fails unless SLACKTIME_SKIP_INTEGRATION is set.
func skipIfNoToken(t *testing.T) {
	t.Helper()
	if os.Getenv("SLACK_API_TOKEN") != "" {
		return
	}
	if isCI() && os.Getenv("SLACKTIME_SKIP_INTEGRATION") == "" {
		t.Fatal("SLACK_API_TOKEN not set (CI environment detected; set SLACKTIME_SKIP_INTEGRATION=1 to skip)")
	}
	t.Skip("SLACK_API_TOKEN not set")
}

// testChannel returns the channel integration tests may post to, skipping
// when none is configured.
func testChannel(t *testing.T) string {
	t.Helper()
	channel := os.Getenv("SLACKTIME_TEST_CHANNEL")
	if channel == "" {
		t.Skip("SLACKTIME_TEST_CHANNEL not set")
	}
	return channel
}

// cliResult holds the result of running a CLI command.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the slacktime CLI with the given arguments, using the
// pre-built binary from TestMain.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	if cliBinary == "" {
		t.Fatal("CLI binary not built - TestMain may not have run")
	}

	cmd := exec.Command(cliBinary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("Failed to run CLI: %v", err)
		}
	}

	return cliResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
