package engine

import (
	"context"
	"strings"
	"testing"
)

func buildTestAgent(t *testing.T, llm LLMClient) *Agent {
	t.Helper()
	agent, err := NewAgentBuilder().
		WithLLM(llm).
		WithTools(testRegistry(t)).
		WithMaxSteps(3).
		WithHooks(NopHook{}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return agent
}

func TestAgentRunNotConfigured(t *testing.T) {
	agent := buildTestAgent(t, nil)

	resp := agent.Run(context.Background(), "what is 2+2?")
	if resp.Success {
		t.Error("Success = true, want false")
	}
	if resp.Error != "Agent not configured." {
		t.Errorf("Error = %q, want %q", resp.Error, "Agent not configured.")
	}
	if resp.Answer != "" {
		t.Errorf("Answer = %q, want empty", resp.Answer)
	}
}

func TestAgentRunSuccess(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Thought: easy\nFinal Answer: 4",
	}}
	agent := buildTestAgent(t, llm)

	resp := agent.Run(context.Background(), "what is 2+2?")
	if !resp.Success {
		t.Fatalf("Success = false, error = %q", resp.Error)
	}
	if resp.Answer != "4" {
		t.Errorf("Answer = %q, want %q", resp.Answer, "4")
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty", resp.Error)
	}
	if agent.LastState() == nil {
		t.Error("LastState() = nil after a run")
	}
}

func TestAgentRunMaxStepsExhausted(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		"Action: echo\nAction Input: a",
		"Action: echo\nAction Input: b",
		"Action: echo\nAction Input: c",
	}}
	agent := buildTestAgent(t, llm)

	resp := agent.Run(context.Background(), "loop forever")
	if resp.Success {
		t.Error("Success = true, want false")
	}
	if !strings.Contains(resp.Error, "stopped after 3 steps") {
		t.Errorf("Error = %q, want step-bound message", resp.Error)
	}
}

func TestAgentBuilderRequiresTools(t *testing.T) {
	_, err := NewAgentBuilder().WithLLM(&scriptedLLM{}).Build()
	if err == nil {
		t.Fatal("Build succeeded without tools")
	}
}

func TestAgentBuilderUnknownPrompt(t *testing.T) {
	_, err := NewAgentBuilder().
		WithLLM(&scriptedLLM{}).
		WithTools(testRegistry(t)).
		WithPrompt("does-not-exist", "").
		Build()
	if err == nil {
		t.Fatal("Build succeeded with unknown prompt id")
	}
}

func TestAgentDefaults(t *testing.T) {
	agent := buildTestAgent(t, nil)
	cfg := agent.Config()

	if cfg.AgentName != "scout" {
		t.Errorf("AgentName = %q, want scout", cfg.AgentName)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.Model)
	}
}
