package engine

import (
	"context"
	"time"
)

// Hooks fans callbacks out to every registered hook in order.
type Hooks []Hook

func (hs Hooks) OnStepStart(ctx context.Context, st *State) {
	for _, h := range hs {
		h.OnStepStart(ctx, st)
	}
}

func (hs Hooks) OnBeforeLLM(ctx context.Context, st *State, prompt string) {
	for _, h := range hs {
		h.OnBeforeLLM(ctx, st, prompt)
	}
}

func (hs Hooks) OnAfterLLM(ctx context.Context, st *State, resp LLMResponse) {
	for _, h := range hs {
		h.OnAfterLLM(ctx, st, resp)
	}
}

func (hs Hooks) OnAction(ctx context.Context, st *State, call ToolCall) {
	for _, h := range hs {
		h.OnAction(ctx, st, call)
	}
}

func (hs Hooks) OnObservation(ctx context.Context, st *State, call ToolCall, observation string) {
	for _, h := range hs {
		h.OnObservation(ctx, st, call, observation)
	}
}

func (hs Hooks) OnParseError(ctx context.Context, st *State, raw, reason string) {
	for _, h := range hs {
		h.OnParseError(ctx, st, raw, reason)
	}
}

func (hs Hooks) OnRetryAttempt(ctx context.Context, st *State, attempt int, delay time.Duration, err error) {
	for _, h := range hs {
		h.OnRetryAttempt(ctx, st, attempt, delay, err)
	}
}

func (hs Hooks) OnRetryExhausted(ctx context.Context, st *State, err error) {
	for _, h := range hs {
		h.OnRetryExhausted(ctx, st, err)
	}
}

func (hs Hooks) OnDone(ctx context.Context, st *State) {
	for _, h := range hs {
		h.OnDone(ctx, st)
	}
}
