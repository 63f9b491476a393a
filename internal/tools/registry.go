// Package tools provides the built-in mock tools and their registry.
package tools

import (
	"github.com/ChamsBouzaiene/scout/internal/engine"
)

// stringInputSchema validates the {"input": ...} document every tool call is
// wrapped in before execution.
const stringInputSchema = `{
	"type": "object",
	"properties": {
		"input": {"type": "string"}
	},
	"required": ["input"]
}`

// DefaultRegistry returns the built-in tool set: calculator, get_weather and
// web_search.
func DefaultRegistry() engine.ToolRegistry {
	return engine.ToolRegistry{
		"calculator": {
			Name:        "calculator",
			Description: calculatorDescription,
			SchemaJSON:  stringInputSchema,
			Fn:          Calculator,
			Retryable:   true,
			Metadata: engine.ToolMetadata{
				Version:  "1.0.0",
				Category: "math",
				Tags:     []string{"read-only", "idempotent"},
			},
		},
		"get_weather": {
			Name:        "get_weather",
			Description: weatherDescription,
			SchemaJSON:  stringInputSchema,
			Fn:          GetWeather,
			Retryable:   true,
			Metadata: engine.ToolMetadata{
				Version:  "1.0.0",
				Category: "mock",
				Tags:     []string{"read-only"},
			},
		},
		"web_search": {
			Name:        "web_search",
			Description: searchDescription,
			SchemaJSON:  stringInputSchema,
			Fn:          WebSearch,
			Retryable:   true,
			Metadata: engine.ToolMetadata{
				Version:  "1.0.0",
				Category: "mock",
				Tags:     []string{"read-only"},
			},
		},
	}
}
