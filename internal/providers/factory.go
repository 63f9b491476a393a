package providers

import (
	"fmt"
	"os"

	"github.com/ChamsBouzaiene/scout/internal/engine"
)

// NewLLMClientFromEnv creates an engine.LLMClient based on environment
// variables. A missing credential is not an error: it returns (nil, "", nil)
// so the caller can run in not-configured mode without any network calls.
func NewLLMClientFromEnv() (engine.LLMClient, string, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "azure"
	}

	switch provider {
	case "azure":
		endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
		apiKey := os.Getenv("AZURE_OPENAI_API_KEY")
		if endpoint == "" || apiKey == "" {
			return nil, "", nil
		}

		deployment := os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME")
		if deployment == "" {
			deployment = "gpt-4o"
		}
		apiVersion := os.Getenv("AZURE_OPENAI_API_VERSION")
		if apiVersion == "" {
			apiVersion = "2024-10-21"
		}

		client, err := NewAzureOpenAIClient(apiKey, endpoint, deployment, apiVersion)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create Azure OpenAI client: %w", err)
		}
		return client, deployment, nil

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, "", nil
		}

		modelName := os.Getenv("ANTHROPIC_MODEL")
		if modelName == "" {
			modelName = "claude-3-5-sonnet-20241022"
		}

		client, err := NewAnthropicClient(apiKey, modelName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create Anthropic client: %w", err)
		}
		return client, modelName, nil

	default:
		return nil, "", fmt.Errorf("unsupported LLM_PROVIDER: %s", provider)
	}
}
