package engine

import "strings"

// DecisionKind tags the outcome of parsing one model reply.
type DecisionKind int

const (
	// DecisionMalformed means the reply matched neither terminal marker.
	// The loop feeds a corrective observation back instead of failing.
	DecisionMalformed DecisionKind = iota
	// DecisionAction means the reply named a tool and an input for it.
	DecisionAction
	// DecisionFinal means the reply carries the final answer.
	DecisionFinal
)

// Decision is the parsed form of one model reply.
type Decision struct {
	Kind    DecisionKind
	Thought string // free text preceding the action (action/final replies)
	Tool    string // named tool (action replies)
	Input   string // tool argument (action replies)
	Answer  string // final answer text (final replies)
	Raw     string // the reply as received, trimmed
	Reason  string // why parsing failed (malformed replies)
}

const (
	finalAnswerMarker = "Final Answer:"
	actionMarker      = "Action:"
	actionInputMarker = "Action Input:"
	thoughtMarker     = "Thought:"
)

// ParseDecision applies the ReAct grammar to raw model output. The parser is
// line-oriented and tolerant: markers may appear after leading whitespace,
// the thought prefix is optional, and unexpected text around the markers is
// ignored. "Final Answer:" wins when a reply carries both markers, since it
// terminates the loop either way.
func ParseDecision(output string) Decision {
	raw := strings.TrimSpace(output)
	if raw == "" {
		return Decision{Kind: DecisionMalformed, Raw: raw, Reason: "empty model output"}
	}

	if idx := strings.Index(raw, finalAnswerMarker); idx >= 0 {
		thought := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw[:idx]), thoughtMarker))
		answer := strings.TrimSpace(raw[idx+len(finalAnswerMarker):])
		if answer == "" {
			return Decision{Kind: DecisionMalformed, Raw: raw, Reason: "final answer marker with no answer text"}
		}
		return Decision{Kind: DecisionFinal, Thought: thought, Answer: answer, Raw: raw}
	}

	var thoughtLines []string
	var tool, input string
	seenAction := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, actionInputMarker):
			input = strings.TrimSpace(trimmed[len(actionInputMarker):])
			// Models frequently quote the argument; the tools expect it bare.
			input = strings.Trim(input, `"'`)
		case strings.HasPrefix(trimmed, actionMarker):
			tool = strings.TrimSpace(trimmed[len(actionMarker):])
			// Tolerate the bracketed form the template itself uses: [tool_names].
			tool = strings.Trim(tool, "[]")
			seenAction = true
		case !seenAction:
			thoughtLines = append(thoughtLines, line)
		}
	}

	if tool == "" {
		return Decision{Kind: DecisionMalformed, Raw: raw, Reason: "no Action or Final Answer marker found"}
	}

	thought := strings.TrimSpace(strings.Join(thoughtLines, "\n"))
	thought = strings.TrimSpace(strings.TrimPrefix(thought, thoughtMarker))
	return Decision{Kind: DecisionAction, Thought: thought, Tool: tool, Input: input, Raw: raw}
}
