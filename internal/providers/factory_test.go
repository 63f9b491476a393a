package providers

import (
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LLM_PROVIDER",
		"AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_API_KEY",
		"AZURE_OPENAI_DEPLOYMENT_NAME", "AZURE_OPENAI_API_VERSION",
		"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFactoryAzureNotConfigured(t *testing.T) {
	clearProviderEnv(t)

	client, model, err := NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if client != nil {
		t.Error("client should be nil without credentials")
	}
	if model != "" {
		t.Errorf("model = %q, want empty", model)
	}
}

func TestFactoryAzureEndpointAloneIsNotEnough(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")

	client, _, err := NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if client != nil {
		t.Error("client should be nil when the api key is missing")
	}
}

func TestFactoryAzureConfigured(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPENAI_API_KEY", "test-key")

	client, model, err := NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if client == nil {
		t.Fatal("client is nil with full credentials")
	}
	if model != "gpt-4o" {
		t.Errorf("model = %q, want default gpt-4o", model)
	}

	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "my-deployment")
	_, model, err = NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if model != "my-deployment" {
		t.Errorf("model = %q, want my-deployment", model)
	}
}

func TestFactoryAnthropic(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("LLM_PROVIDER", "anthropic")

	client, _, err := NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if client != nil {
		t.Error("client should be nil without ANTHROPIC_API_KEY")
	}

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	client, model, err := NewLLMClientFromEnv()
	if err != nil {
		t.Fatalf("NewLLMClientFromEnv: %v", err)
	}
	if client == nil {
		t.Fatal("client is nil with an api key")
	}
	if model == "" {
		t.Error("model is empty, want a default")
	}
}

func TestFactoryUnknownProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")

	if _, _, err := NewLLMClientFromEnv(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
