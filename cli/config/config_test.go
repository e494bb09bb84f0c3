package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DefaultProfile != "" {
		t.Errorf("DefaultProfile = %q, want empty", cfg.DefaultProfile)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("default_profile: work\ndefault_channel: \"#ops\"\nbase_url: https://example.com/api\ntimeout_seconds: 30\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", cfg.DefaultProfile, "work")
	}
	if cfg.DefaultChannel != "#ops" {
		t.Errorf("DefaultChannel = %q, want %q", cfg.DefaultChannel, "#ops")
	}
	if cfg.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://example.com/api")
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_profile: work\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("SLACKTIME_PROFILE", "personal")
	t.Setenv("SLACKTIME_BASE_URL", "https://proxy.example.com/api")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DefaultProfile != "personal" {
		t.Errorf("DefaultProfile = %q, want env override %q", cfg.DefaultProfile, "personal")
	}
	if cfg.BaseURL != "https://proxy.example.com/api" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_profile: [unclosed"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil, want parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &Config{DefaultProfile: "work", DefaultChannel: "#ops"}
	if err := in.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if out.DefaultProfile != in.DefaultProfile || out.DefaultChannel != in.DefaultChannel {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
