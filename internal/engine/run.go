package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ChamsBouzaiene/scout/internal/prompts"
	"github.com/ChamsBouzaiene/scout/internal/telemetry"
)

// formatCorrection is fed back as an observation when a reply matches neither
// the action grammar nor the final answer marker.
const formatCorrection = `Error: could not parse your reply. Respond in exactly one of these two forms:

Thought: <your reasoning>
Action: <tool name>
Action Input: <input for the tool>

or:

Thought: <your reasoning>
Final Answer: <your answer>`

// Run drives the think/act/observe loop until the model produces a final
// answer or the step bound is hit. Tool failures and unparseable replies are
// folded back into the scratchpad as observations; only LLM transport
// failures (after retries) and context cancellation return an error.
func Run(
	ctx context.Context,
	llm LLMClient,
	reg ToolRegistry,
	tpl *prompts.Prompt,
	st *State,
	hooks Hooks,
	opts ChatOptions,
	tracer trace.Tracer,
) error {
	policy := DefaultRetryPolicy()
	if opts.Retry != nil {
		policy = *opts.Retry
	}

	for st.Step < st.MaxSteps {
		select {
		case <-ctx.Done():
			return fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		hooks.OnStepStart(ctx, st)

		prompt := prompts.RenderReact(tpl, reg.Describe(), reg.Names(), st.Question, st.RenderScratchpad())
		hooks.OnBeforeLLM(ctx, st, prompt)

		resp, err := callLLMWithRetry(ctx, llm, policy, st, prompt, opts, hooks, tracer)
		if err != nil {
			hooks.OnRetryExhausted(ctx, st, err)
			return err
		}
		hooks.OnAfterLLM(ctx, st, resp)

		st.Totals.Prompt += resp.Usage.Prompt
		st.Totals.Completion += resp.Usage.Completion
		st.Totals.Total += resp.Usage.Total
		st.Step++

		d := ParseDecision(resp.Content)
		switch d.Kind {
		case DecisionFinal:
			st.Done = true
			st.Answer = d.Answer
			hooks.OnDone(ctx, st)
			return nil

		case DecisionAction:
			call := ToolCall{Name: d.Tool, Input: d.Input}
			hooks.OnAction(ctx, st, call)
			observation := reg.Execute(ctx, tracer, call)
			hooks.OnObservation(ctx, st, call, observation)
			st.Append(ScratchEntry{
				Thought:     d.Thought,
				Action:      d.Tool,
				ActionInput: d.Input,
				Observation: observation,
			})

		default:
			hooks.OnParseError(ctx, st, d.Raw, d.Reason)
			st.Append(ScratchEntry{
				Thought:     d.Raw,
				Observation: formatCorrection,
			})
		}
	}

	return &MaxStepsError{Steps: st.MaxSteps}
}

// callLLMWithRetry wraps one LLM round trip (including retries) in a chat
// span carrying the request and response attributes.
func callLLMWithRetry(
	ctx context.Context,
	llm LLMClient,
	policy RetryPolicy,
	st *State,
	prompt string,
	opts ChatOptions,
	hooks Hooks,
	tracer trace.Tracer,
) (LLMResponse, error) {
	ctx, span := tracer.Start(ctx, telemetry.OperationChat+" "+st.Model,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(telemetry.AttrOperationName, telemetry.OperationChat),
			attribute.String(telemetry.AttrRequestModel, st.Model),
			attribute.Int(telemetry.AttrRequestMaxTokens, opts.MaxOutputTokens),
			attribute.Float64(telemetry.AttrRequestTemperature, float64(opts.Temperature)),
		),
	)
	defer span.End()

	messages := []ChatMessage{{Role: RoleUser, Content: prompt}}

	resp, err := RetryLLMCall(ctx, policy, llm, st.Model, messages, opts,
		func(attempt int, delay time.Duration, retryErr error) {
			hooks.OnRetryAttempt(ctx, st, attempt, delay, retryErr)
		})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(telemetry.AttrErrorType, fmt.Sprintf("%T", err)))
		return LLMResponse{}, err
	}

	span.SetAttributes(
		attribute.String(telemetry.AttrResponseModel, resp.Model),
		attribute.StringSlice(telemetry.AttrResponseFinishReasons, []string{resp.FinishReason}),
		attribute.Int(telemetry.AttrUsageInputTokens, resp.Usage.Prompt),
		attribute.Int(telemetry.AttrUsageOutputTokens, resp.Usage.Completion),
	)

	return resp, nil
}
