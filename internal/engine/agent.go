package engine

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ChamsBouzaiene/scout/internal/prompts"
	"github.com/ChamsBouzaiene/scout/internal/telemetry"
)

const notConfiguredMsg = "Agent not configured."

// Agent ties an LLM client, a tool registry and a prompt template into one
// runnable unit. Construct it through NewAgentBuilder.
type Agent struct {
	llm       LLMClient
	tools     ToolRegistry
	config    AgentConfig
	hooks     Hooks
	prompt    *prompts.Prompt
	tracer    trace.Tracer
	lastState *State
}

// Run answers one question. It never returns a Go error: configuration gaps,
// exhausted retries and the step bound all surface through the Response.
func (a *Agent) Run(ctx context.Context, query string) Response {
	if a.llm == nil {
		return Response{Success: false, Error: notConfiguredMsg}
	}

	st := NewState(query, a.config.Model, a.config.MaxSteps)
	a.lastState = st

	ctx, span := a.tracer.Start(ctx, telemetry.OperationInvokeAgent+" "+a.config.AgentName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(telemetry.AttrOperationName, telemetry.OperationInvokeAgent),
			attribute.String(telemetry.AttrAgentName, a.config.AgentName),
			attribute.String(telemetry.AttrRequestModel, a.config.Model),
			attribute.String("run.id", st.RunID),
		),
	)
	defer span.End()

	opts := ChatOptions{
		Temperature:     a.config.Temperature,
		MaxOutputTokens: a.config.MaxOutputTokens,
		// Halt generation before the model fabricates tool output.
		Stop:  []string{"\nObservation:"},
		Retry: &a.config.Retry,
	}

	err := Run(ctx, a.llm, a.tools, a.prompt, st, a.hooks, opts, a.tracer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var maxSteps *MaxStepsError
		if errors.As(err, &maxSteps) {
			return Response{Success: false, Error: maxSteps.Error()}
		}
		return Response{Success: false, Error: "Error running agent: " + err.Error()}
	}

	return Response{Success: true, Answer: st.Answer}
}

// LastState exposes the state of the most recent run, for history recording
// and tests.
func (a *Agent) LastState() *State { return a.lastState }

// Config returns a copy of the agent's configuration.
func (a *Agent) Config() AgentConfig { return a.config }
