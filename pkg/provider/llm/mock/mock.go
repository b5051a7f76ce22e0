// Package mock provides a test double for the llm.Provider interface.
//
// Use Provider in unit tests to verify that the agent loop sends correct
// CompletionRequests and to feed controlled responses without a live LLM
// backend. All fields are safe to set before calling any method; mutating them
// during a concurrent call is the caller's responsibility.
//
// Example:
//
//	p := &mock.Provider{
//	    Script: [][]llm.Chunk{
//	        {{Text: "Searching now. "}, {FinishReason: "tool_calls", ToolCalls: calls}},
//	        {{Text: "Done."}, {FinishReason: "stop"}},
//	    },
//	}
package mock

import (
	"context"
	"sync"

	"github.com/khoj-travel/copilot/pkg/provider/llm"
)

// StreamCall records a single invocation of StreamCompletion.
type StreamCall struct {
	// Ctx is the context passed to StreamCompletion.
	Ctx context.Context
	// Req is the CompletionRequest passed to StreamCompletion.
	Req llm.CompletionRequest
}

// Provider is a mock implementation of llm.Provider.
//
// Each StreamCompletion call consumes the next entry of Script in order; when
// the script is exhausted the stream emits a single "stop" chunk. Set
// StreamErr to make every StreamCompletion call fail to start.
type Provider struct {
	mu sync.Mutex

	// Script holds one chunk sequence per expected StreamCompletion call.
	Script [][]llm.Chunk

	// StreamErr, if non-nil, is returned from StreamCompletion instead of
	// starting a channel.
	StreamErr error

	// CompleteResponse is returned by Complete. Nil yields an empty response.
	CompleteResponse *llm.CompletionResponse

	// CompleteErr, if non-nil, is returned from Complete.
	CompleteErr error

	// StreamCalls records every StreamCompletion invocation in order.
	StreamCalls []StreamCall

	next int
}

var _ llm.Provider = (*Provider)(nil)

// StreamCompletion implements llm.Provider.
func (p *Provider) StreamCompletion(ctx context.Context, req llm.CompletionRequest) (<-chan llm.Chunk, error) {
	p.mu.Lock()
	p.StreamCalls = append(p.StreamCalls, StreamCall{Ctx: ctx, Req: req})
	if p.StreamErr != nil {
		p.mu.Unlock()
		return nil, p.StreamErr
	}
	var chunks []llm.Chunk
	if p.next < len(p.Script) {
		chunks = p.Script[p.next]
		p.next++
	} else {
		chunks = []llm.Chunk{{FinishReason: "stop"}}
	}
	p.mu.Unlock()

	ch := make(chan llm.Chunk, len(chunks))
	go func() {
		defer close(ch)
		for _, c := range chunks {
			select {
			case ch <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Complete implements llm.Provider.
func (p *Provider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.CompleteErr != nil {
		return nil, p.CompleteErr
	}
	if p.CompleteResponse != nil {
		return p.CompleteResponse, nil
	}
	return &llm.CompletionResponse{}, nil
}

// Calls returns the number of StreamCompletion invocations so far.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.StreamCalls)
}
