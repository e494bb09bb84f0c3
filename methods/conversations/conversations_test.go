package conversations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/slacktime/slacktime-go/core"
)

func newTestClient(t *testing.T, response string) (*Conversations, *[]url.Values) {
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

func TestInviteJoinsUsers(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true}`)

	if _, err := c.Invite(context.Background(), "C1234", []string{"U1", "U2", "U3"}); err != nil {
		t.Fatalf("Invite() error = %v", err)
	}

	form := (*requests)[0]
	if got := form.Get("users"); got != "U1,U2,U3" {
		t.Errorf("form[\"users\"] = %q, want %q", got, "U1,U2,U3")
	}
}

func TestHistoryPagination(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true, "messages": [], "response_metadata": {"next_cursor": ""}}`)

	_, err := c.History(context.Background(), "C1234", &HistoryOptions{
		Cursor: "dXNlcjpVMDYxTkZUVDI=",
		Limit:  200,
	})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}

	query := (*requests)[0]
	if got := query.Get("cursor"); got != "dXNlcjpVMDYxTkZUVDI=" {
		t.Errorf("query[\"cursor\"] = %q, want cursor", got)
	}
	if got := query.Get("limit"); got != "200" {
		t.Errorf("query[\"limit\"] = %q, want %q", got, "200")
	}
}

func TestListTypes(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true, "channels": []}`)

	_, err := c.List(context.Background(), &ListOptions{
		ExcludeArchived: boolPtr(true),
		Types:           []string{"public_channel", "private_channel"},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	query := (*requests)[0]
	if got := query.Get("types"); got != "public_channel,private_channel" {
		t.Errorf("query[\"types\"] = %q, want joined types", got)
	}
	if got := query.Get("exclude_archived"); got != "true" {
		t.Errorf("query[\"exclude_archived\"] = %q, want %q", got, "true")
	}
}

func TestKick(t *testing.T) {
	c, requests := newTestClient(t, `{"ok": true}`)

	if _, err := c.Kick(context.Background(), "C1234", "U1"); err != nil {
		t.Fatalf("Kick() error = %v", err)
	}

	form := (*requests)[0]
	if got := form.Get("channel"); got != "C1234" {
		t.Errorf("form[\"channel\"] = %q, want %q", got, "C1234")
	}
	if got := form.Get("user"); got != "U1" {
		t.Errorf("form[\"user\"] = %q, want %q", got, "U1")
	}
}

func TestArchiveFailure(t *testing.T) {
	c, _ := newTestClient(t, `{"ok": false, "error": "already_archived"}`)

	_, err := c.Archive(context.Background(), "C1234")
	if !core.IsCode(err, "already_archived") {
		t.Errorf("error = %v, want already_archived", err)
	}
}

func boolPtr(b bool) *bool { return &b }
