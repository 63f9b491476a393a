package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ChamsBouzaiene/scout/internal/prompts"
)

// scriptedLLM replays a fixed sequence of replies and records the prompts it
// was given.
type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (s *scriptedLLM) Chat(ctx context.Context, model string, messages []ChatMessage, opts ChatOptions) (LLMResponse, error) {
	idx := s.calls
	s.calls++
	if len(messages) > 0 {
		s.prompts = append(s.prompts, messages[len(messages)-1].Content)
	}
	if idx < len(s.errs) && s.errs[idx] != nil {
		return LLMResponse{}, s.errs[idx]
	}
	if idx >= len(s.replies) {
		return LLMResponse{}, errors.New("scripted llm ran out of replies")
	}
	return LLMResponse{
		Content:      s.replies[idx],
		Model:        model,
		Usage:        Usage{Prompt: 10, Completion: 5, Total: 15},
		FinishReason: "stop",
	}, nil
}

func testRegistry(t *testing.T) ToolRegistry {
	t.Helper()
	return ToolRegistry{
		"echo": {
			Name:        "echo",
			Description: "Echoes its input.",
			SchemaJSON:  `{"type":"object","properties":{"input":{"type":"string"}},"required":["input"]}`,
			Fn: func(ctx context.Context, input string) (string, error) {
				return "echo: " + input, nil
			},
		},
	}
}

func testPrompt(t *testing.T) *prompts.Prompt {
	t.Helper()
	p, err := prompts.DefaultRegistry().GetLatest("react")
	if err != nil {
		t.Fatalf("react prompt not registered: %v", err)
	}
	return p
}

func runLoop(t *testing.T, llm *scriptedLLM, maxSteps int) (*State, error) {
	t.Helper()
	st := NewState("test question", "gpt-4o", maxSteps)
	tracer := noop.NewTracerProvider().Tracer("")
	err := Run(context.Background(), llm, testRegistry(t), testPrompt(t), st, Hooks{}, ChatOptions{}, tracer)
	return st, err
}

func TestRunFinalAnswerFirstStep(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Thought: I know this\nFinal Answer: forty-two",
	}}

	st, err := runLoop(t, llm, 5)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !st.Done {
		t.Error("state not marked done")
	}
	if st.Answer != "forty-two" {
		t.Errorf("Answer = %q, want %q", st.Answer, "forty-two")
	}
	if st.Step != 1 {
		t.Errorf("Step = %d, want 1", st.Step)
	}
	if st.Totals.Total != 15 {
		t.Errorf("Totals.Total = %d, want 15", st.Totals.Total)
	}
}

func TestRunToolRoundTrip(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Thought: let me check\nAction: echo\nAction Input: hello",
		"Thought: I now know the final answer\nFinal Answer: it said hello",
	}}

	st, err := runLoop(t, llm, 5)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if st.Answer != "it said hello" {
		t.Errorf("Answer = %q", st.Answer)
	}
	if len(st.Scratchpad) != 1 {
		t.Fatalf("scratchpad has %d entries, want 1", len(st.Scratchpad))
	}
	entry := st.Scratchpad[0]
	if entry.Action != "echo" || entry.ActionInput != "hello" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Observation != "echo: hello" {
		t.Errorf("Observation = %q", entry.Observation)
	}

	// The second prompt must carry the first observation.
	if len(llm.prompts) != 2 {
		t.Fatalf("llm saw %d prompts, want 2", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[1], "Observation: echo: hello") {
		t.Errorf("second prompt missing observation:\n%s", llm.prompts[1])
	}
}

func TestRunUnknownToolBecomesObservation(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Thought: hmm\nAction: no_such_tool\nAction Input: x",
		"Final Answer: gave up",
	}}

	st, err := runLoop(t, llm, 5)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(st.Scratchpad) != 1 {
		t.Fatalf("scratchpad has %d entries, want 1", len(st.Scratchpad))
	}
	obs := st.Scratchpad[0].Observation
	if !strings.Contains(obs, "unknown tool") || !strings.Contains(obs, "echo") {
		t.Errorf("Observation = %q, want unknown-tool error naming available tools", obs)
	}
	if st.Answer != "gave up" {
		t.Errorf("Answer = %q", st.Answer)
	}
}

func TestRunMalformedReplyGetsCorrection(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"I think the answer is four.",
		"Final Answer: four",
	}}

	st, err := runLoop(t, llm, 5)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(st.Scratchpad) != 1 {
		t.Fatalf("scratchpad has %d entries, want 1", len(st.Scratchpad))
	}
	entry := st.Scratchpad[0]
	if entry.Action != "" {
		t.Errorf("malformed entry has Action %q, want empty", entry.Action)
	}
	if !strings.Contains(entry.Observation, "could not parse") {
		t.Errorf("Observation = %q, want format correction", entry.Observation)
	}
	// The correction must reach the model on the next call.
	if !strings.Contains(llm.prompts[1], "could not parse") {
		t.Errorf("second prompt missing correction:\n%s", llm.prompts[1])
	}
	if st.Answer != "four" {
		t.Errorf("Answer = %q", st.Answer)
	}
}

func TestRunStopsAtMaxSteps(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Action: echo\nAction Input: 1",
		"Action: echo\nAction Input: 2",
		"Action: echo\nAction Input: 3",
	}}

	st, err := runLoop(t, llm, 3)
	if err == nil {
		t.Fatal("Run returned nil error, want MaxStepsError")
	}
	if !IsMaxSteps(err) {
		t.Fatalf("error = %v, want MaxStepsError", err)
	}
	if st.Done {
		t.Error("state marked done despite hitting the step bound")
	}
	if st.Step != 3 {
		t.Errorf("Step = %d, want 3", st.Step)
	}
	if want := "agent stopped after 3 steps without reaching a final answer"; err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	llm := &scriptedLLM{replies: []string{"Final Answer: never reached"}}
	st := NewState("q", "gpt-4o", 5)
	tracer := noop.NewTracerProvider().Tracer("")

	err := Run(ctx, llm, testRegistry(t), testPrompt(t), st, Hooks{}, ChatOptions{}, tracer)
	if err == nil {
		t.Fatal("Run returned nil error for cancelled context")
	}
	if llm.calls != 0 {
		t.Errorf("llm called %d times after cancellation, want 0", llm.calls)
	}
}
