package engine

// AgentConfig holds the tunable knobs of an Agent.
type AgentConfig struct {
	AgentName       string
	Model           string
	MaxSteps        int
	Temperature     float32
	MaxOutputTokens int
	Retry           RetryPolicy
	PromptID        string
	PromptVersion   string // empty = latest
}

// DefaultAgentConfig returns the defaults a bare builder starts from.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		AgentName:       "scout",
		Model:           "gpt-4o",
		MaxSteps:        5,
		Temperature:     0.7,
		MaxOutputTokens: 1024,
		Retry:           DefaultRetryPolicy(),
		PromptID:        "react",
	}
}
