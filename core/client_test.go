package core

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestMakeURL(t *testing.T) {
	c := New("xoxb-token")

	got := c.MakeURL("chat.postMessage")
	want := "https://slack.com/api/chat.postMessage"
	if got != want {
		t.Errorf("MakeURL() = %q, want %q", got, want)
	}
}

func TestMakeURLCustomBase(t *testing.T) {
	c := New("xoxb-token", WithBaseURL("https://example.com/api/"))

	got := c.MakeURL("api.test")
	want := "https://example.com/api/api.test"
	if got != want {
		t.Errorf("MakeURL() = %q, want %q", got, want)
	}
}

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want %q", r.Method, http.MethodGet)
		}
		if got := r.URL.Query().Get("token"); got != "xoxb-token" {
			t.Errorf("token = %q, want %q", got, "xoxb-token")
		}
		if got := r.URL.Query().Get("channel"); got != "C1234" {
			t.Errorf("channel = %q, want %q", got, "C1234")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "channel": {"id": "C1234"}}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	p := Payload{}
	p.Set("channel", "C1234")
	env, err := c.Get(context.Background(), "conversations.info", p)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if !env.Successful {
		t.Error("Successful = false, want true")
	}
	if env.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", env.StatusCode, http.StatusOK)
	}
	if env.ErrorCode != "" {
		t.Errorf("ErrorCode = %q, want empty", env.ErrorCode)
	}
	channel, ok := env.Body["channel"].(map[string]any)
	if !ok {
		t.Fatalf("Body[\"channel\"] = %T, want map", env.Body["channel"])
	}
	if channel["id"] != "C1234" {
		t.Errorf("channel id = %v, want C1234", channel["id"])
	}
}

func TestPostFormEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want form encoding", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("token"); got != "xoxb-token" {
			t.Errorf("token = %q, want %q", got, "xoxb-token")
		}
		if got := r.PostForm.Get("text"); got != "hello world" {
			t.Errorf("text = %q, want %q", got, "hello world")
		}
		w.Write([]byte(`{"ok": true, "ts": "1503435956.000247"}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	p := Payload{}
	p.Set("channel", "C1234")
	p.Set("text", "hello world")
	env, err := c.Post(context.Background(), "chat.postMessage", p)
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if got := env.String("ts"); got != "1503435956.000247" {
		t.Errorf("ts = %q, want %q", got, "1503435956.000247")
	}
}

func TestPostDoesNotMutatePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	p := Payload{}
	p.Set("channel", "C1234")
	if _, err := c.Post(context.Background(), "chat.postMessage", p); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if p.Has("token") {
		t.Error("caller payload gained a token key")
	}
}

func TestFailureBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	env, err := c.Post(context.Background(), "chat.postMessage", Payload{})
	if env != nil {
		t.Error("envelope returned alongside error")
	}
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "channel_not_found" {
		t.Errorf("Code = %q, want %q", apiErr.Code, "channel_not_found")
	}
	if !strings.HasSuffix(apiErr.Docs, "/chat.postMessage") {
		t.Errorf("Docs = %q, want chat.postMessage page", apiErr.Docs)
	}

	if !errors.Is(err, &APIError{Code: "channel_not_found"}) {
		t.Error("errors.Is by code = false, want true")
	}
	if errors.Is(err, &APIError{Code: "is_archived"}) {
		t.Error("errors.Is with other code = true, want false")
	}
	if !errors.Is(err, &APIError{}) {
		t.Error("errors.Is with empty code = false, want true")
	}
}

func TestFailureWithoutErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	_, err := c.Post(context.Background(), "api.test", Payload{})
	if !IsCode(err, UnknownErrorCode) {
		t.Errorf("ErrorCode(err) = %q, want %q", ErrorCode(err), UnknownErrorCode)
	}
}

func TestMalformedBodyPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	_, err := c.Post(context.Background(), "api.test", Payload{})
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("decode failure surfaced as *APIError: %v", err)
	}
}

func TestPostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		if got := r.FormValue("token"); got != "xoxb-token" {
			t.Errorf("token = %q, want %q", got, "xoxb-token")
		}
		if got := r.FormValue("title"); got != "notes" {
			t.Errorf("title = %q, want %q", got, "notes")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		if header.Filename != "notes.txt" {
			t.Errorf("filename = %q, want %q", header.Filename, "notes.txt")
		}
		data, _ := io.ReadAll(file)
		if string(data) != "file contents" {
			t.Errorf("file body = %q, want %q", data, "file contents")
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := New("xoxb-token", WithBaseURL(server.URL))

	p := Payload{}
	p.Set("title", "notes")
	upload := FileUpload{Field: "file", Filename: "notes.txt", Reader: strings.NewReader("file contents")}
	if _, err := c.PostMultipart(context.Background(), "files.upload", p, upload); err != nil {
		t.Fatalf("PostMultipart() error = %v", err)
	}
}

// recordingHook captures call events for assertions.
type recordingHook struct {
	mu     sync.Mutex
	starts []CallStartEvent
	ends   []CallEndEvent
}

func (h *recordingHook) OnCallStart(ev CallStartEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, ev)
}

func (h *recordingHook) OnCallEnd(ev CallEndEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ends = append(h.ends, ev)
}

func TestHookObservesCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error": "invalid_auth"}`))
	}))
	defer server.Close()

	hook := &recordingHook{}
	c := New("xoxb-token", WithBaseURL(server.URL), WithHook(hook))

	_, err := c.Post(context.Background(), "auth.test", Payload{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if len(hook.starts) != 1 || len(hook.ends) != 1 {
		t.Fatalf("events = %d starts, %d ends, want 1 each", len(hook.starts), len(hook.ends))
	}
	start, end := hook.starts[0], hook.ends[0]
	if start.ID == "" || start.ID != end.ID {
		t.Errorf("event IDs = %q / %q, want matching non-empty", start.ID, end.ID)
	}
	if start.Path != "auth.test" {
		t.Errorf("start path = %q, want %q", start.Path, "auth.test")
	}
	if end.Status != http.StatusOK {
		t.Errorf("end status = %d, want %d", end.Status, http.StatusOK)
	}
	if !IsCode(end.Err, "invalid_auth") {
		t.Errorf("end err = %v, want invalid_auth", end.Err)
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	c := New("xoxb-token", WithBaseURL("http://127.0.0.1:1"))

	_, err := c.Get(context.Background(), "api.test", Payload{})
	if err == nil {
		t.Fatal("expected transport error, got nil")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure surfaced as *APIError: %v", err)
	}
}
