package anyllm

import (
	"testing"

	"github.com/khoj-travel/copilot/pkg/provider/llm"
	"github.com/khoj-travel/copilot/pkg/types"
)

// TestNew_EmptyArgs checks constructor validation.
func TestNew_EmptyArgs(t *testing.T) {
	if _, err := New("", "some-model"); err == nil {
		t.Error("expected error for empty provider name")
	}
	if _, err := New("groq", ""); err == nil {
		t.Error("expected error for empty model")
	}
}

// TestNew_UnsupportedProvider checks the unknown-backend error path.
func TestNew_UnsupportedProvider(t *testing.T) {
	if _, err := New("cohere", "command-r"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

// TestBuildParams checks request conversion including tools and temperature.
func TestBuildParams(t *testing.T) {
	p := &Provider{model: "openai/gpt-oss-120b"}
	req := llm.CompletionRequest{
		SystemPrompt: "You are Khoj.",
		Messages: []types.Message{
			{Role: "user", Content: "Find hotels in Bali"},
		},
		Temperature: 0.1,
		MaxTokens:   4096,
		Tools: []llm.ToolDefinition{
			{Name: "search_hotels", Description: "Search hotels", Parameters: map[string]any{"type": "object"}},
		},
	}

	params := p.buildParams(req)
	if params.Model != "openai/gpt-oss-120b" {
		t.Errorf("unexpected model %q", params.Model)
	}
	if len(params.Messages) != 2 {
		t.Fatalf("expected 2 messages (system + user), got %d", len(params.Messages))
	}
	if params.Temperature == nil || *params.Temperature != 0.1 {
		t.Error("temperature not propagated")
	}
	if params.MaxTokens == nil || *params.MaxTokens != 4096 {
		t.Error("max tokens not propagated")
	}
	if len(params.Tools) != 1 || params.Tools[0].Function.Name != "search_hotels" {
		t.Errorf("tools not propagated: %+v", params.Tools)
	}
}

// TestConvertMessage_ToolRole checks tool-role back-reference conversion.
func TestConvertMessage_ToolRole(t *testing.T) {
	m := types.Message{
		Role:       "tool",
		Content:    `{"success":true}`,
		ToolCallID: "call_3",
		Name:       "prebook_room",
	}
	out := convertMessage(m)
	if out.Role != "tool" || out.ToolCallID != "call_3" || out.Name != "prebook_room" {
		t.Errorf("unexpected conversion: %+v", out)
	}
}
