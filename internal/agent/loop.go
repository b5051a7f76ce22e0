package agent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/khoj-travel/copilot/internal/agent/tools"
	"github.com/khoj-travel/copilot/pkg/provider/llm"
	"github.com/khoj-travel/copilot/pkg/types"
)

// defaultMaxRounds bounds the number of tool-calling rounds per run. The
// bound guards against a model stuck re-searching forever; hitting it ends
// the run with done, and the final round's tool calls are not executed.
const defaultMaxRounds = 5

// Recorder receives run telemetry. The zero behavior (nil Recorder) is no-op.
type Recorder interface {
	RunStarted(ctx context.Context)
	RunEnded(ctx context.Context, err bool)
	ModelRound(ctx context.Context, d time.Duration)
	ToolExecuted(ctx context.Context, name string, success bool, d time.Duration)
}

// Runner drives agent runs against a model provider and a tool registry.
// A Runner is stateless across runs and safe for concurrent use; each run
// owns its own message list.
type Runner struct {
	provider    llm.Provider
	registry    *tools.Registry
	logger      *slog.Logger
	recorder    Recorder
	maxRounds   int
	temperature float64
	now         func() time.Time
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMaxRounds overrides the tool-calling round bound.
func WithMaxRounds(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.maxRounds = n
		}
	}
}

// WithTemperature sets the sampling temperature on every model request.
// Zero (the default) means the provider default.
func WithTemperature(t float64) RunnerOption {
	return func(r *Runner) {
		r.temperature = t
	}
}

// WithRecorder attaches a telemetry recorder.
func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithClock replaces the time source used for the system prompt's date.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a Runner over the given provider and registry.
func NewRunner(provider llm.Provider, registry *tools.Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		provider:  provider,
		registry:  registry,
		logger:    slog.Default(),
		maxRounds: defaultMaxRounds,
		now:       time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RunOptions are the inputs to one agent run.
type RunOptions struct {
	// Messages is the prior conversation (user/assistant turns only). The
	// run builds its own system prompt; callers must not include one.
	Messages []types.Message

	ClientName        string
	ClientPreferences string
	TripID            string
	TripSummary       string
}

// Run starts an agent run and returns its event stream. The channel is closed
// after exactly one terminal event (done or error). Cancelling ctx halts the
// run at the next safe point: mid-stream model requests fail fast, and no
// tool_start is left without a matching tool_result unless the run
// terminates.
func (r *Runner) Run(ctx context.Context, opts RunOptions) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		r.run(ctx, opts, ch)
	}()
	return ch
}

// emit delivers an event unless the run is cancelled. Returns false when the
// consumer is gone.
func emit(ctx context.Context, ch chan<- Event, ev Event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *Runner) run(ctx context.Context, opts RunOptions, ch chan<- Event) {
	if r.recorder != nil {
		r.recorder.RunStarted(ctx)
	}
	failed := false
	defer func() {
		if r.recorder != nil {
			r.recorder.RunEnded(ctx, failed)
		}
	}()

	system := buildSystemPrompt(PromptContext{
		ClientName:        opts.ClientName,
		ClientPreferences: opts.ClientPreferences,
		TripID:            opts.TripID,
		TripSummary:       opts.TripSummary,
		Today:             r.now(),
	})
	msgs := make([]types.Message, 0, len(opts.Messages)+1)
	msgs = append(msgs, types.Message{Role: types.RoleSystem, Content: system})
	msgs = append(msgs, opts.Messages...)

	defs := r.registry.Definitions()

	for round := 0; round < r.maxRounds; round++ {
		roundStart := time.Now()
		stream, err := r.provider.StreamCompletion(ctx, llm.CompletionRequest{
			Messages:    msgs,
			Tools:       defs,
			Temperature: r.temperature,
		})
		if err != nil {
			failed = true
			r.logger.Error("model request failed", "round", round, "error", err)
			emit(ctx, ch, Event{Type: EventError, Content: err.Error()})
			return
		}

		var textBuf strings.Builder
		var calls []types.ToolCall
		for chunk := range stream {
			if chunk.FinishReason == "error" {
				failed = true
				r.logger.Error("model stream failed", "round", round, "error", chunk.Text)
				emit(ctx, ch, Event{Type: EventError, Content: chunk.Text})
				return
			}
			if chunk.Text != "" {
				textBuf.WriteString(chunk.Text)
				if !emit(ctx, ch, Event{Type: EventText, Content: chunk.Text}) {
					return
				}
			}
			calls = append(calls, chunk.ToolCalls...)
		}
		if r.recorder != nil {
			r.recorder.ModelRound(ctx, time.Since(roundStart))
		}
		if ctx.Err() != nil {
			return
		}

		if len(calls) == 0 {
			emit(ctx, ch, Event{Type: EventDone})
			return
		}

		// Narrative-before-action: a round that acts must say something
		// first. When the model stayed silent, synthesize the narration and
		// make it the assistant message's content so the transcript matches
		// what was streamed.
		content := textBuf.String()
		if content == "" {
			content = synthesizeNarrative(calls)
			if !emit(ctx, ch, Event{Type: EventText, Content: content}) {
				return
			}
		}

		msgs = append(msgs, types.Message{
			Role:      types.RoleAssistant,
			Content:   content,
			ToolCalls: calls,
		})

		// Tool calls run strictly in emission order. Later calls depend on
		// booking-session state established by earlier ones, so there is no
		// parallelism here.
		for _, tc := range calls {
			if ctx.Err() != nil {
				return
			}
			args := parseArgs(tc.Arguments)
			if !emit(ctx, ch, Event{Type: EventToolStart, ToolName: tc.Name, ToolArgs: args}) {
				return
			}

			toolStart := time.Now()
			result := r.registry.Execute(ctx, tc.Name, args)
			if r.recorder != nil {
				r.recorder.ToolExecuted(ctx, tc.Name, result.Success, time.Since(toolStart))
			}

			res := result
			if !emit(ctx, ch, Event{Type: EventToolResult, ToolName: tc.Name, ToolResult: &res}) {
				return
			}

			msgs = append(msgs, types.Message{
				Role:       types.RoleTool,
				Content:    summarize(tc.Name, result),
				ToolCallID: tc.ID,
				Name:       tc.Name,
			})
		}
	}

	emit(ctx, ch, Event{Type: EventDone})
}
