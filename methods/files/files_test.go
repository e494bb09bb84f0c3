package files

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slacktime/slacktime-go/core"
)

func TestUploadFromReader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		if got := r.FormValue("channels"); got != "C1,C2" {
			t.Errorf("channels = %q, want %q", got, "C1,C2")
		}
		if got := r.FormValue("filename"); got != "report.csv" {
			t.Errorf("filename field = %q, want %q", got, "report.csv")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		if header.Filename != "report.csv" {
			t.Errorf("part filename = %q, want %q", header.Filename, "report.csv")
		}
		data, _ := io.ReadAll(file)
		if string(data) != "a,b\n1,2\n" {
			t.Errorf("file body = %q", data)
		}
		w.Write([]byte(`{"ok": true, "file": {"id": "F1"}}`))
	}))
	defer server.Close()

	f := New(core.New("xoxb-token", core.WithBaseURL(server.URL)))

	env, err := f.Upload(context.Background(), &UploadOptions{
		Channels: []string{"C1", "C2"},
		File:     strings.NewReader("a,b\n1,2\n"),
		Filename: "report.csv",
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if !env.Successful {
		t.Error("Successful = false, want true")
	}
}

func TestUploadContentStaysFormEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want form encoding", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("content"); got != "inline contents" {
			t.Errorf("content = %q, want %q", got, "inline contents")
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	f := New(core.New("xoxb-token", core.WithBaseURL(server.URL)))

	if _, err := f.Upload(context.Background(), &UploadOptions{Content: "inline contents"}); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
}

func TestUploadRejectsBadFileType(t *testing.T) {
	f := New(core.New("xoxb-token"))

	_, err := f.Upload(context.Background(), &UploadOptions{File: 42})
	if err == nil {
		t.Fatal("expected error for non-file value, got nil")
	}
}

func TestRemoteAddWithPreviewSwitchesToMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error = %v", err)
		}
		if got := r.FormValue("external_id"); got != "doc-42" {
			t.Errorf("external_id = %q, want %q", got, "doc-42")
		}
		file, _, err := r.FormFile("preview_image")
		if err != nil {
			t.Fatalf("FormFile() error = %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "png bytes" {
			t.Errorf("preview body = %q", data)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	f := New(core.New("xoxb-token", core.WithBaseURL(server.URL)))

	_, err := f.Remote.Add(context.Background(), "doc-42", "https://example.com/doc", "A doc", &RemoteAddOptions{
		PreviewImage: strings.NewReader("png bytes"),
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}

func TestRemoteAddWithoutFilesUsesGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want %q", r.Method, http.MethodGet)
		}
		if got := r.URL.Query().Get("external_url"); got != "https://example.com/doc" {
			t.Errorf("external_url = %q", got)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	f := New(core.New("xoxb-token", core.WithBaseURL(server.URL)))

	if _, err := f.Remote.Add(context.Background(), "doc-42", "https://example.com/doc", "A doc", nil); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}

func TestCommentsDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("file"); got != "F1" {
			t.Errorf("file = %q, want %q", got, "F1")
		}
		if got := r.PostForm.Get("id"); got != "Fc1" {
			t.Errorf("id = %q, want %q", got, "Fc1")
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	f := New(core.New("xoxb-token", core.WithBaseURL(server.URL)))

	if _, err := f.Comments.Delete(context.Background(), "F1", "Fc1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
