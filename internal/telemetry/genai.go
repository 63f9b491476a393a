// Package telemetry wires OpenTelemetry tracing with the GenAI semantic
// conventions used on agent, chat and tool spans.
package telemetry

// GenAI semantic convention attribute keys.
const (
	AttrProviderName          = "gen_ai.provider.name"
	AttrOperationName         = "gen_ai.operation.name"
	AttrRequestModel          = "gen_ai.request.model"
	AttrRequestMaxTokens      = "gen_ai.request.max_tokens"
	AttrRequestTemperature    = "gen_ai.request.temperature"
	AttrResponseModel         = "gen_ai.response.model"
	AttrResponseFinishReasons = "gen_ai.response.finish_reasons"
	AttrUsageInputTokens      = "gen_ai.usage.input_tokens"
	AttrUsageOutputTokens     = "gen_ai.usage.output_tokens"
	AttrToolName              = "gen_ai.tool.name"
	AttrToolDescription       = "gen_ai.tool.description"
	AttrToolType              = "gen_ai.tool.type"
	AttrAgentName             = "gen_ai.agent.name"
	AttrErrorType             = "error.type"
)

// Operation name values.
const (
	OperationChat        = "chat"
	OperationExecuteTool = "execute_tool"
	OperationInvokeAgent = "invoke_agent"
)

// ToolTypeFunction is the gen_ai.tool.type value for in-process functions.
const ToolTypeFunction = "function"
