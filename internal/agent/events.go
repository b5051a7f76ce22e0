// Package agent implements the copilot's agentic loop: streaming model
// output, executing tool calls, summarizing results back into the model's
// context, and emitting a uniform event sequence for the transport layer.
package agent

import "github.com/khoj-travel/copilot/internal/agent/tools"

// EventType discriminates the events emitted by a run.
type EventType string

const (
	// EventText carries a fragment of assistant narrative.
	EventText EventType = "text"

	// EventToolStart announces a tool invocation with its parsed arguments.
	EventToolStart EventType = "tool_start"

	// EventToolResult carries the full, unabridged tool result.
	EventToolResult EventType = "tool_result"

	// EventDone terminates a successful run.
	EventDone EventType = "done"

	// EventError terminates a failed run.
	EventError EventType = "error"
)

// Event is one frame of a run's output stream. Exactly one terminal event
// (done or error) is emitted per run, always last.
type Event struct {
	Type       EventType      `json:"type"`
	Content    string         `json:"content,omitempty"`
	ToolName   string         `json:"toolName,omitempty"`
	ToolArgs   map[string]any `json:"toolArgs,omitempty"`
	ToolResult *tools.Result  `json:"toolResult,omitempty"`
}
