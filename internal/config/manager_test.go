package config

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return &Manager{configDir: filepath.Join(t.TempDir(), "scout")}
}

func TestManagerLoadMissingFile(t *testing.T) {
	m := newTestManager(t)

	if m.Exists() {
		t.Error("Exists() = true before any save")
	}

	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Load of missing file = %+v, want zero config", cfg)
	}
}

func TestManagerSaveAndLoad(t *testing.T) {
	m := newTestManager(t)

	want := &Config{
		Provider:          "azure",
		APIKey:            "secret",
		Endpoint:          "https://example.openai.azure.com",
		Deployment:        "gpt-4o",
		TelemetryEndpoint: "collector:4317",
		MaxSteps:          7,
	}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !m.Exists() {
		t.Error("Exists() = false after save")
	}

	info, err := os.Stat(m.GetConfigPath())
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestApplyToEnvDoesNotOverrideExplicitEnv(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://from-env.example.com")
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	os.Unsetenv("AZURE_OPENAI_API_KEY")

	cfg := &Config{
		Provider: "azure",
		Endpoint: "https://from-config.example.com",
		APIKey:   "config-key",
	}
	cfg.ApplyToEnv()

	if got := os.Getenv("AZURE_OPENAI_ENDPOINT"); got != "https://from-env.example.com" {
		t.Errorf("endpoint = %q, explicit env should win", got)
	}
	if got := os.Getenv("AZURE_OPENAI_API_KEY"); got != "config-key" {
		t.Errorf("api key = %q, config should fill unset vars", got)
	}
}

func TestApplyToEnvAnthropicKeyRouting(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	os.Unsetenv("ANTHROPIC_API_KEY")
	t.Setenv("AZURE_OPENAI_API_KEY", "")
	os.Unsetenv("AZURE_OPENAI_API_KEY")

	cfg := &Config{Provider: "anthropic", APIKey: "anthropic-key"}
	cfg.ApplyToEnv()

	if got := os.Getenv("ANTHROPIC_API_KEY"); got != "anthropic-key" {
		t.Errorf("ANTHROPIC_API_KEY = %q", got)
	}
	if got := os.Getenv("AZURE_OPENAI_API_KEY"); got != "" {
		t.Errorf("AZURE_OPENAI_API_KEY = %q, want unset", got)
	}
}
