package engine

import (
	"context"
	"time"
)

// Hook receives callbacks at each stage of the agent loop. Implementations
// must be fast and must not mutate state beyond their own bookkeeping.
type Hook interface {
	OnStepStart(ctx context.Context, st *State)
	OnBeforeLLM(ctx context.Context, st *State, prompt string)
	OnAfterLLM(ctx context.Context, st *State, resp LLMResponse)
	OnAction(ctx context.Context, st *State, call ToolCall)
	OnObservation(ctx context.Context, st *State, call ToolCall, observation string)
	OnParseError(ctx context.Context, st *State, raw, reason string)
	OnRetryAttempt(ctx context.Context, st *State, attempt int, delay time.Duration, err error)
	OnRetryExhausted(ctx context.Context, st *State, err error)
	OnDone(ctx context.Context, st *State)
}

// NopHook implements Hook with no-ops. Embed it to implement only the
// callbacks you care about.
type NopHook struct{}

func (NopHook) OnStepStart(context.Context, *State)                               {}
func (NopHook) OnBeforeLLM(context.Context, *State, string)                       {}
func (NopHook) OnAfterLLM(context.Context, *State, LLMResponse)                   {}
func (NopHook) OnAction(context.Context, *State, ToolCall)                        {}
func (NopHook) OnObservation(context.Context, *State, ToolCall, string)           {}
func (NopHook) OnParseError(context.Context, *State, string, string)              {}
func (NopHook) OnRetryAttempt(context.Context, *State, int, time.Duration, error) {}
func (NopHook) OnRetryExhausted(context.Context, *State, error)                   {}
func (NopHook) OnDone(context.Context, *State)                                    {}
