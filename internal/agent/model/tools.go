package model

// ToolOutcome is what a tool handler produces for one invocation. Result is
// serialized back to the chat model; StatePatch and DisplayData are for the
// client only and never enter the model context.
type ToolOutcome struct {
	Result      any
	StatePatch  *CareStatePatch
	DisplayData *DisplayData
}

// ToolResult is the per-call record returned to the client alongside the
// assistant reply.
type ToolResult struct {
	ToolCallID  string       `json:"toolCallId"`
	ToolName    string       `json:"toolName"`
	Result      any          `json:"result"`
	DisplayData *DisplayData `json:"displayData,omitempty"`
	IsError     bool         `json:"isError,omitempty"`
}
