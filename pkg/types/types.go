// Package types defines the shared conversation types used across all Khoj
// Copilot packages.
//
// These types form the lingua franca between the LLM providers, the tool
// executor, and the agent loop. They are intentionally minimal — each package
// defines its own domain types, but cross-cutting data structures live here to
// avoid circular imports.
package types

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single message in an LLM conversation history.
//
// Invariants maintained by the agent loop:
//
//   - A message with Role "tool" carries a ToolCallID matching exactly one
//     preceding assistant tool call in the same conversation.
//   - An assistant message carrying ToolCalls is followed, for each call, by
//     exactly one tool-role response before the next user turn.
type Message struct {
	// Role is one of "system", "user", "assistant", or "tool".
	Role string `json:"role"`

	// Content is the text content of the message. Empty when an assistant
	// message carries only tool calls.
	Content string `json:"content"`

	// ToolCalls contains any tool invocations requested by the assistant.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID is set when Role is "tool", identifying which tool call this
	// message responds to.
	ToolCallID string `json:"tool_call_id,omitempty"`

	// Name is the tool name for tool-role messages.
	Name string `json:"name,omitempty"`
}

// ToolCall represents a tool invocation requested by the LLM.
//
// During streaming, providers assemble a ToolCall incrementally from delta
// fragments keyed by call index; a ToolCall only leaves the provider once all
// of its fragments have been merged.
type ToolCall struct {
	// ID is the unique identifier for this call instance (provider-assigned, opaque).
	ID string `json:"id"`

	// Name is the tool name. Must match a registered tool definition.
	Name string `json:"name"`

	// Arguments is the JSON-encoded arguments string, concatenated from
	// streamed fragments in arrival order.
	Arguments string `json:"arguments"`
}
