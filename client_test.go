package slacktime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slacktime/slacktime-go/core"
)

func TestNewWiresGroupings(t *testing.T) {
	c := New("xoxb-token")

	if c.Chat == nil || c.Conversations == nil || c.Admin == nil || c.Files == nil {
		t.Fatal("grouping field is nil")
	}
	if c.Admin.Users.Session == nil || c.Team.Profile == nil || c.Files.Remote == nil {
		t.Fatal("nested grouping field is nil")
	}
	if c.Core() == nil {
		t.Fatal("Core() is nil")
	}
	if got := c.Core().Token().Expose(); got != "xoxb-token" {
		t.Errorf("token = %q, want %q", got, "xoxb-token")
	}
}

func TestGroupingsShareClient(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := New("xoxb-token", core.WithBaseURL(server.URL))

	if _, err := c.API.Test(context.Background(), nil); err != nil {
		t.Fatalf("API.Test() error = %v", err)
	}
	if _, err := c.Auth.Test(context.Background()); err != nil {
		t.Fatalf("Auth.Test() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(DefaultTokenEnvVar, "xoxb-from-env")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if got := c.Core().Token().Expose(); got != "xoxb-from-env" {
		t.Errorf("token = %q, want %q", got, "xoxb-from-env")
	}
}

func TestFromEnvMissing(t *testing.T) {
	t.Setenv(DefaultTokenEnvVar, "")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() error = nil, want error")
	}
}

func TestPointerHelpers(t *testing.T) {
	if got := Bool(true); got == nil || !*got {
		t.Error("Bool(true) did not round-trip")
	}
	if got := Int(7); got == nil || *got != 7 {
		t.Error("Int(7) did not round-trip")
	}
	if got := String("x"); got == nil || *got != "x" {
		t.Error("String(\"x\") did not round-trip")
	}
}
