package prompts

import "strings"

// reactTemplate is the think/act/observe template. Placeholders: {tools},
// {tool_names}, {input} and {agent_scratchpad}.
const reactTemplate = `You are a helpful assistant with access to tools. Use them when needed.

You have access to the following tools:
{tools}

Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, should be one of [{tool_names}]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question

Begin!

Question: {input}
Thought:{agent_scratchpad}`

func init() {
	DefaultRegistry().Register(&Prompt{
		ID:          "react",
		Version:     PromptV1,
		Content:     reactTemplate,
		Description: "Single-shot think/act/observe loop over a text grammar",
		Tags:        []string{"agent", "tools"},
	})
}

// RenderReact substitutes the template placeholders. The scratchpad string is
// appended directly after the trailing "Thought:" marker, so a non-empty
// transcript must end with its own "Thought: " cue.
func RenderReact(tpl *Prompt, tools string, toolNames []string, question, scratchpad string) string {
	r := strings.NewReplacer(
		"{tools}", tools,
		"{tool_names}", strings.Join(toolNames, ", "),
		"{input}", question,
		"{agent_scratchpad}", scratchpad,
	)
	return r.Replace(tpl.Content)
}
