package engine

import (
	"context"
	"log"
	"time"
)

// LoggerHook logs the agent loop's progress to a standard logger.
type LoggerHook struct {
	L *log.Logger
}

func (h LoggerHook) logger() *log.Logger {
	if h.L != nil {
		return h.L
	}
	return log.Default()
}

func (h LoggerHook) OnStepStart(ctx context.Context, st *State) {
	h.logger().Printf("🔁 step %d/%d (run %s)", st.Step+1, st.MaxSteps, st.RunID)
}

func (h LoggerHook) OnBeforeLLM(ctx context.Context, st *State, prompt string) {
	h.logger().Printf("📤 calling %s (%d prompt chars)", st.Model, len(prompt))
}

func (h LoggerHook) OnAfterLLM(ctx context.Context, st *State, resp LLMResponse) {
	h.logger().Printf("📥 got %d chars (tokens: %d in / %d out)",
		len(resp.Content), resp.Usage.Prompt, resp.Usage.Completion)
}

func (h LoggerHook) OnAction(ctx context.Context, st *State, call ToolCall) {
	h.logger().Printf("🔧 tool %s(%q)", call.Name, call.Input)
}

func (h LoggerHook) OnObservation(ctx context.Context, st *State, call ToolCall, observation string) {
	h.logger().Printf("👁️  %s -> %s", call.Name, observation)
}

func (h LoggerHook) OnParseError(ctx context.Context, st *State, raw, reason string) {
	h.logger().Printf("⚠️  unparseable reply (%s), feeding correction back", reason)
}

func (h LoggerHook) OnRetryAttempt(ctx context.Context, st *State, attempt int, delay time.Duration, err error) {
	st.Retries++
	h.logger().Printf("🔄 retry %d in %s: %v", attempt, delay.Round(time.Millisecond), err)
}

func (h LoggerHook) OnRetryExhausted(ctx context.Context, st *State, err error) {
	h.logger().Printf("❌ retries exhausted: %v", err)
}

func (h LoggerHook) OnDone(ctx context.Context, st *State) {
	h.logger().Printf("✅ done in %d step(s), %d tokens total", st.Step, st.Totals.Total)
}
