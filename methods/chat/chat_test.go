package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/slacktime/slacktime-go/core"
)

// newTestClient returns a chat grouping pointed at a server that records
// each request's form values.
func newTestClient(t *testing.T, response string) (*Chat, *[]url.Values) {
	t.Helper()

	var requests []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if r.URL.RawQuery != "" {
			requests = append(requests, r.URL.Query())
		} else {
			requests = append(requests, r.PostForm)
		}
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return New(core.New("xoxb-token", core.WithBaseURL(server.URL))), &requests
}

func TestPostMessage(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true, "ts": "1503435956.000247"}`)

	env, err := c.PostMessage(context.Background(), "C1234", "hello", &PostMessageOptions{
		IconEmoji: ":robot_face:",
		ThreadTS:  1503435956.000247,
		Username:  "deploybot",
	})
	if err != nil {
		t.Fatalf("PostMessage() error = %v", err)
	}
	if got := env.String("ts"); got != "1503435956.000247" {
		t.Errorf("ts = %q, want %q", got, "1503435956.000247")
	}

	form := (*requests)[0]
	for key, want := range map[string]string{
		"channel":    "C1234",
		"text":       "hello",
		"icon_emoji": ":robot_face:",
		"thread_ts":  "1503435956.000247",
		"username":   "deploybot",
	} {
		if got := form.Get(key); got != want {
			t.Errorf("form[%q] = %q, want %q", key, got, want)
		}
	}
	if form.Has("as_user") {
		t.Error("unset optional as_user was sent")
	}
}

func TestPostMessageEncodesBlocks(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true}`)

	blocks := []map[string]any{{"type": "divider"}}
	if _, err := c.PostMessage(context.Background(), "C1234", "hello", &PostMessageOptions{Blocks: blocks}); err != nil {
		t.Fatalf("PostMessage() error = %v", err)
	}

	form := (*requests)[0]
	if got, want := form.Get("blocks"), `[{"type":"divider"}]`; got != want {
		t.Errorf("form[\"blocks\"] = %q, want %q", got, want)
	}
}

func TestPostMessageRejectsScalarBlocks(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true}`)

	_, err := c.PostMessage(context.Background(), "C1234", "hello", &PostMessageOptions{Blocks: 42})
	if err == nil {
		t.Fatal("expected error for scalar blocks, got nil")
	}
	if len(*requests) != 0 {
		t.Error("request was sent despite encoding failure")
	}
}

func TestDelete(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true}`)

	if _, err := c.Delete(context.Background(), "C1234", 1405894322.002768, nil); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	form := (*requests)[0]
	if got := form.Get("ts"); got != "1405894322.002768" {
		t.Errorf("form[\"ts\"] = %q, want %q", got, "1405894322.002768")
	}
}

func TestGetPermalink(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true, "permalink": "https://example.slack.com/archives/C1/p1"}`)

	env, err := c.GetPermalink(context.Background(), "C1234", 1503435956.000247)
	if err != nil {
		t.Fatalf("GetPermalink() error = %v", err)
	}
	if got := env.String("permalink"); got == "" {
		t.Error("permalink is empty")
	}

	query := (*requests)[0]
	if got := query.Get("message_ts"); got != "1503435956.000247" {
		t.Errorf("query[\"message_ts\"] = %q, want %q", got, "1503435956.000247")
	}
}

func TestScheduledMessagesList(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true, "scheduled_messages": []}`)

	if _, err := c.ScheduledMessages.List(context.Background(), &ScheduledMessagesListOptions{Channel: "C1234"}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	query := (*requests)[0]
	if got := query.Get("channel"); got != "C1234" {
		t.Errorf("query[\"channel\"] = %q, want %q", got, "C1234")
	}
}

func TestPostMessageFailure(t *testing.T) {
	c, _ := newTestClient(t, `{"ok": false, "error": "channel_not_found"}`)

	_, err := c.PostMessage(context.Background(), "CBAD", "hello", nil)
	if !core.IsCode(err, "channel_not_found") {
		t.Errorf("error = %v, want channel_not_found", err)
	}
}
