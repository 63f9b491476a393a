package engine

import (
	"fmt"
	"log"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ChamsBouzaiene/scout/internal/prompts"
)

// AgentBuilder assembles an Agent step by step. Zero values fall back to
// DefaultAgentConfig, a logging hook and a no-op tracer.
type AgentBuilder struct {
	llm    LLMClient
	tools  ToolRegistry
	config AgentConfig
	hooks  Hooks
	prompt *prompts.Prompt
	tracer trace.Tracer
	err    error
}

func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{config: DefaultAgentConfig()}
}

// WithLLM sets the LLM client. A nil client is allowed: the built agent
// answers every query with a not-configured error instead of calling out.
func (b *AgentBuilder) WithLLM(llm LLMClient) *AgentBuilder {
	b.llm = llm
	return b
}

func (b *AgentBuilder) WithModel(model string) *AgentBuilder {
	if model != "" {
		b.config.Model = model
	}
	return b
}

func (b *AgentBuilder) WithAgentName(name string) *AgentBuilder {
	if name != "" {
		b.config.AgentName = name
	}
	return b
}

func (b *AgentBuilder) WithMaxSteps(n int) *AgentBuilder {
	if n > 0 {
		b.config.MaxSteps = n
	}
	return b
}

func (b *AgentBuilder) WithTemperature(t float32) *AgentBuilder {
	b.config.Temperature = t
	return b
}

func (b *AgentBuilder) WithMaxOutputTokens(n int) *AgentBuilder {
	if n > 0 {
		b.config.MaxOutputTokens = n
	}
	return b
}

func (b *AgentBuilder) WithRetryPolicy(p RetryPolicy) *AgentBuilder {
	b.config.Retry = p
	return b
}

func (b *AgentBuilder) WithTools(reg ToolRegistry) *AgentBuilder {
	b.tools = reg
	return b
}

// WithPrompt selects a registered prompt by id and version. An empty version
// picks the latest.
func (b *AgentBuilder) WithPrompt(id, version string) *AgentBuilder {
	b.config.PromptID = id
	b.config.PromptVersion = version
	return b
}

func (b *AgentBuilder) WithHooks(hooks ...Hook) *AgentBuilder {
	b.hooks = hooks
	return b
}

func (b *AgentBuilder) WithTracer(tracer trace.Tracer) *AgentBuilder {
	b.tracer = tracer
	return b
}

// Build validates the configuration and produces the Agent.
func (b *AgentBuilder) Build() (*Agent, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.tools) == 0 {
		return nil, fmt.Errorf("agent requires at least one tool")
	}

	prompt := b.prompt
	if prompt == nil {
		var err error
		if b.config.PromptVersion != "" {
			prompt, err = prompts.DefaultRegistry().Get(b.config.PromptID, prompts.PromptVersion(b.config.PromptVersion))
		} else {
			prompt, err = prompts.DefaultRegistry().GetLatest(b.config.PromptID)
		}
		if err != nil {
			return nil, fmt.Errorf("resolving prompt %q: %w", b.config.PromptID, err)
		}
	}

	hooks := b.hooks
	if hooks == nil {
		hooks = Hooks{LoggerHook{L: log.Default()}}
	}

	tracer := b.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Agent{
		llm:    b.llm,
		tools:  b.tools,
		config: b.config,
		hooks:  hooks,
		prompt: prompt,
		tracer: tracer,
	}, nil
}
