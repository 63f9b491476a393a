// Package providers adapts vendor SDKs to engine.LLMClient.
package providers

import (
	"context"
	"fmt"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/ChamsBouzaiene/scout/internal/engine"
)

// AzureOpenAIClient implements engine.LLMClient against an Azure OpenAI
// deployment.
type AzureOpenAIClient struct {
	client     *openai.Client
	deployment string
}

// NewAzureOpenAIClient creates a client for the given Azure resource.
// deployment is the Azure deployment name the model requests are routed to.
func NewAzureOpenAIClient(apiKey, endpoint, deployment, apiVersion string) (*AzureOpenAIClient, error) {
	if apiKey == "" || endpoint == "" {
		return nil, fmt.Errorf("azure openai requires both api key and endpoint")
	}

	config := openai.DefaultAzureConfig(apiKey, endpoint)
	if apiVersion != "" {
		config.APIVersion = apiVersion
	}
	// Route every model name to the single configured deployment.
	config.AzureModelMapperFunc = func(model string) string {
		return deployment
	}

	return &AzureOpenAIClient{
		client:     openai.NewClientWithConfig(config),
		deployment: deployment,
	}, nil
}

// Chat implements engine.LLMClient.
func (c *AzureOpenAIClient) Chat(ctx context.Context, model string, messages []engine.ChatMessage, opts engine.ChatOptions) (engine.LLMResponse, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if err := m.Validate(); err != nil {
			return engine.LLMResponse{}, err
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
	}
	if opts.MaxOutputTokens > 0 {
		req.MaxTokens = opts.MaxOutputTokens
	}
	if opts.Temperature > 0 {
		req.Temperature = &opts.Temperature
	}
	if len(opts.Stop) > 0 {
		req.Stop = opts.Stop
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		httpStatus, retryAfter := extractErrorMetadata(err)
		return engine.LLMResponse{}, engine.WrapLLMError(err, httpStatus, retryAfter)
	}

	if len(resp.Choices) == 0 {
		return engine.LLMResponse{}, fmt.Errorf("empty response from Azure OpenAI")
	}

	choice := resp.Choices[0]

	finishReason := "stop"
	if choice.FinishReason == openai.FinishReasonLength {
		finishReason = "length"
	} else if choice.FinishReason == openai.FinishReasonContentFilter {
		finishReason = "content_filter"
	}

	return engine.LLMResponse{
		Content: choice.Message.Content,
		Model:   resp.Model,
		Usage: engine.Usage{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
		FinishReason: finishReason,
	}, nil
}
