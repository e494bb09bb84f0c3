package core

import "testing"

func TestPayloadSetters(t *testing.T) {
	p := Payload{}
	p.Set("channel", "C1234")
	p.SetInt("count", 100)
	p.SetFloat("ts", 1405894322.002768)
	p.SetBool("as_user", true)
	p.SetCSV("users", []string{"U1", "U2", "U3"})

	tests := []struct {
		key  string
		want string
	}{
		{"channel", "C1234"},
		{"count", "100"},
		{"ts", "1405894322.002768"},
		{"as_user", "true"},
		{"users", "U1,U2,U3"},
	}
	for _, tt := range tests {
		if got := p.Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestPayloadSetCSVEmpty(t *testing.T) {
	p := Payload{}
	p.SetCSV("users", nil)
	p.SetCSV("channels", []string{})

	if len(p) != 0 {
		t.Errorf("payload has %d keys, want 0", len(p))
	}
}

func TestPayloadSetJSON(t *testing.T) {
	p := Payload{}
	if err := p.SetJSON("blocks", []map[string]any{{"type": "divider"}}); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	if got, want := p.Get("blocks"), `[{"type":"divider"}]`; got != want {
		t.Errorf("Get(\"blocks\") = %q, want %q", got, want)
	}

	if err := p.SetJSON("attachments", `[{"text": "pre-encoded"}]`); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}
	if got, want := p.Get("attachments"), `[{"text": "pre-encoded"}]`; got != want {
		t.Errorf("Get(\"attachments\") = %q, want %q", got, want)
	}

	if err := p.SetJSON("bad", 42); err == nil {
		t.Error("SetJSON(42) error = nil, want error")
	}
}

func TestPayloadEncode(t *testing.T) {
	p := Payload{}
	p.Set("text", "hello world")
	p.Set("channel", "#general")

	got := p.Encode()
	want := "channel=%23general&text=hello+world"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestPayloadClone(t *testing.T) {
	var original Payload
	cloned := original.clone()
	if cloned == nil {
		t.Fatal("clone of nil payload is nil")
	}

	original = Payload{}
	original.Set("key", "value")
	cloned = original.clone()
	cloned.Set("key", "changed")
	cloned.Set("extra", "x")

	if got := original.Get("key"); got != "value" {
		t.Errorf("original key = %q, want %q", got, "value")
	}
	if original.Has("extra") {
		t.Error("original gained a key set on the clone")
	}
}
