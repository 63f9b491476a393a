package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ChamsBouzaiene/scout/internal/telemetry"
)

// ToolFunc is the contract every tool implements: one string in, one string
// out. Error strings returned as the result (with a nil error) flow back to
// the model as ordinary observations.
type ToolFunc func(ctx context.Context, input string) (string, error)

// ToolMetadata provides versioning and categorization for tools.
type ToolMetadata struct {
	Version  string   // e.g., "1.0.0"
	Category string   // e.g., "math", "mock"
	Tags     []string // e.g., ["read-only", "idempotent"]
}

type Tool struct {
	Name        string
	Description string
	SchemaJSON  string // JSON schema for the {"input": ...} document
	Fn          ToolFunc
	Retryable   bool // Whether this tool is idempotent
	Metadata    ToolMetadata
}

// ValidateInput validates the tool input against the tool's JSON schema.
func (t Tool) ValidateInput(input string) error {
	schemaLoader := gojsonschema.NewStringLoader(t.SchemaJSON)
	documentLoader := gojsonschema.NewGoLoader(map[string]any{"input": input})

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		var errorMsgs []string
		for _, err := range result.Errors() {
			errorMsgs = append(errorMsgs, err.String())
		}
		return &ToolValidationError{
			ToolName: t.Name,
			Errors:   errorMsgs,
		}
	}

	return nil
}

type ToolRegistry map[string]Tool

// Names returns the registered tool names, sorted for stable prompt text.
func (r ToolRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe renders one "name: description" line per tool for the {tools}
// placeholder of the prompt template.
func (r ToolRegistry) Describe() string {
	var b strings.Builder
	for i, name := range r.Names() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r[name].Description)
	}
	return b.String()
}

// Execute runs one tool call inside an execute_tool span. Failures never
// escape as errors: unknown tool names, validation failures, tool errors and
// panics all come back as observation text for the model.
func (r ToolRegistry) Execute(ctx context.Context, tracer trace.Tracer, call ToolCall) string {
	t, ok := r[call.Name]
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q (available tools: %s)", call.Name, strings.Join(r.Names(), ", "))
	}

	ctx, span := tracer.Start(ctx, telemetry.OperationExecuteTool+" "+t.Name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(telemetry.AttrOperationName, telemetry.OperationExecuteTool),
			attribute.String(telemetry.AttrToolName, t.Name),
			attribute.String(telemetry.AttrToolType, telemetry.ToolTypeFunction),
		),
	)
	defer span.End()

	if err := t.ValidateInput(call.Input); err != nil {
		span.SetAttributes(attribute.String(telemetry.AttrErrorType, fmt.Sprintf("%T", err)))
		return "Error: " + err.Error()
	}

	result, err := runToolFn(ctx, t, call.Input)
	if err != nil {
		span.SetAttributes(attribute.String(telemetry.AttrErrorType, fmt.Sprintf("%T", err)))
		return "Error: " + err.Error()
	}

	return result
}

// runToolFn isolates tool panics so a misbehaving tool degrades to an error
// observation instead of killing the run.
func runToolFn(ctx context.Context, t Tool, input string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", t.Name, r)
		}
	}()
	return t.Fn(ctx, input)
}
