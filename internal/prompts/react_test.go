package prompts

import (
	"strings"
	"testing"
)

func TestReactPromptRegistered(t *testing.T) {
	p, err := DefaultRegistry().GetLatest("react")
	if err != nil {
		t.Fatalf("GetLatest(react): %v", err)
	}
	if p.Version != PromptV1 {
		t.Errorf("Version = %s, want %s", p.Version, PromptV1)
	}
	for _, placeholder := range []string{"{tools}", "{tool_names}", "{input}", "{agent_scratchpad}"} {
		if !strings.Contains(p.Content, placeholder) {
			t.Errorf("template missing placeholder %s", placeholder)
		}
	}
}

func TestRenderReact(t *testing.T) {
	p, err := DefaultRegistry().GetLatest("react")
	if err != nil {
		t.Fatalf("GetLatest(react): %v", err)
	}

	rendered := RenderReact(p,
		"calculator: does math\nget_weather: mock weather",
		[]string{"calculator", "get_weather"},
		"what is 2+2?",
		" I should calculate\nAction: calculator\nAction Input: 2+2\nObservation: 4\nThought: ")

	if strings.Contains(rendered, "{") {
		t.Errorf("rendered prompt still contains a placeholder:\n%s", rendered)
	}
	if !strings.Contains(rendered, "should be one of [calculator, get_weather]") {
		t.Error("tool names not joined into the format section")
	}
	if !strings.Contains(rendered, "Question: what is 2+2?") {
		t.Error("question not substituted")
	}
	if !strings.Contains(rendered, "Observation: 4") {
		t.Error("scratchpad not substituted")
	}
	if !strings.HasSuffix(rendered, "\nThought: ") {
		t.Errorf("rendered prompt should end with the continuation cue, got ...%q",
			rendered[len(rendered)-20:])
	}
}

func TestRegistryVersioning(t *testing.T) {
	r := NewPromptRegistry()
	r.Register(&Prompt{ID: "demo", Version: PromptV1, Content: "v1"})
	r.Register(&Prompt{ID: "demo", Version: PromptV2, Content: "v2"})

	latest, err := r.GetLatest("demo")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if latest.Content != "v2" {
		t.Errorf("GetLatest picked %q, want v2", latest.Content)
	}

	v1, err := r.Get("demo", PromptV1)
	if err != nil {
		t.Fatalf("Get v1: %v", err)
	}
	if v1.Content != "v1" {
		t.Errorf("Get(v1) = %q", v1.Content)
	}

	if _, err := r.Get("demo", "9.9.9"); err == nil {
		t.Error("Get with unknown version should fail")
	}
	if _, err := r.GetLatest("missing"); err == nil {
		t.Error("GetLatest with unknown id should fail")
	}
}

func TestGetLatestSkipsDeprecated(t *testing.T) {
	r := NewPromptRegistry()
	r.Register(&Prompt{ID: "demo", Version: PromptV1, Content: "v1"})
	r.Register(&Prompt{ID: "demo", Version: PromptV2, Content: "v2", Deprecated: true})

	latest, err := r.GetLatest("demo")
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if latest.Content != "v1" {
		t.Errorf("GetLatest = %q, want the non-deprecated v1", latest.Content)
	}
}
