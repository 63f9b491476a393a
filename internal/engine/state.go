// Package engine provides agent orchestration functionality.

package engine

import (
	"strings"

	"github.com/google/uuid"
)

// ScratchEntry is one completed think/act/observe cycle. Entries with an
// empty Action record a malformed model reply together with the corrective
// observation that was fed back.
type ScratchEntry struct {
	Thought     string `json:"thought,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionInput string `json:"action_input,omitempty"`
	Observation string `json:"observation"`
}

type State struct {
	RunID      string         // Correlates spans, logs and history rows for one run
	Question   string         // The user's input question
	Scratchpad []ScratchEntry // Ordered transcript of completed cycles
	Step       int            // Current step (increments only on success)
	Retries    int            // Retry attempts (tracked separately from steps)
	Done       bool           // True once the model emitted a final answer
	Answer     string         // Final answer text, set when Done
	Model      string         // LLM model name
	MaxSteps   int            // Maximum steps before stopping
	Totals     Usage          // Accumulated token usage across all calls
}

// NewState creates the state for a single run.
func NewState(question, model string, maxSteps int) *State {
	return &State{
		RunID:    uuid.NewString(),
		Question: question,
		Model:    model,
		MaxSteps: maxSteps,
	}
}

func (s *State) Append(e ScratchEntry) { s.Scratchpad = append(s.Scratchpad, e) }

// RenderScratchpad renders the transcript in the format the ReAct template
// expects after its trailing "Thought:" marker: each entry contributes its
// thought, the action lines when present, the observation, and a fresh
// "Thought: " cue for the model to continue from.
func (s *State) RenderScratchpad() string {
	if len(s.Scratchpad) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range s.Scratchpad {
		b.WriteString(e.Thought)
		if e.Action != "" {
			b.WriteString("\nAction: ")
			b.WriteString(e.Action)
			b.WriteString("\nAction Input: ")
			b.WriteString(e.ActionInput)
		}
		b.WriteString("\nObservation: ")
		b.WriteString(e.Observation)
		b.WriteString("\nThought: ")
	}
	return b.String()
}
