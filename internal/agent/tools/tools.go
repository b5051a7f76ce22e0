// Package tools declares the copilot's tool surface and executes tool calls.
//
// The registry is a closed, statically declared table: each row pairs the
// model-facing schema with its handler, so every declared tool has exactly
// one implementation by construction. The model-facing names and parameter
// shapes are stable — the language model's function-calling convention keys
// off them.
//
// Handlers never leak errors upward. Every outcome, including upstream
// failures and bad arguments, is normalized into a [Result] so the agent loop
// can relay it to both the model and the client without aborting the run.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khoj-travel/copilot/internal/tbo"
	"github.com/khoj-travel/copilot/pkg/provider/llm"
)

// Result is the uniform outcome of one tool execution. Failure implies no
// payload; success does not guarantee a non-empty one.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps a payload in a success result.
func Ok(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail builds a failure result with a formatted message.
func Fail(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Handler executes one tool call against already-parsed arguments.
type Handler func(ctx context.Context, args map[string]any) Result

// entry pairs a tool's model-facing schema with its handler.
type entry struct {
	def     llm.ToolDefinition
	handler Handler
}

// BookingAPI is the slice of the TBO client the tool handlers consume.
// *tbo.Client implements it.
type BookingAPI interface {
	SearchHotels(ctx context.Context, params tbo.SearchParams) (*tbo.SearchOutcome, error)
	HotelDetails(ctx context.Context, hotelCodes string) (*tbo.DetailsResponse, error)
	AvailableRooms(ctx context.Context, hotelBookingCode string) (*tbo.RoomsResponse, error)
	PreBook(ctx context.Context, bookingCode string) (*tbo.PreBookResponse, error)
	BookHotel(ctx context.Context, params tbo.BookParams) (*tbo.BookResponse, error)
	BookingDetail(ctx context.Context, confirmationNumber string) (map[string]any, error)
	CancelBooking(ctx context.Context, confirmationNumber string) (map[string]any, error)
	CancellationPolicy(ctx context.Context, bookingCode string) (map[string]any, error)
}

// CodeSource yields the cached hotel code list for a city. *tbo.CodeCache
// implements it.
type CodeSource interface {
	Codes(ctx context.Context, cityCode string) ([]string, error)
}

// Registry holds the declared tools and their execution dependencies.
type Registry struct {
	booking BookingAPI
	codes   CodeSource
	logger  *slog.Logger
	now     func() time.Time

	entries []entry
	byName  map[string]int
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock replaces the time source used for generated references and
// timestamps. Tests use this for deterministic output.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry builds the full tool table over the given collaborators.
func NewRegistry(booking BookingAPI, codes CodeSource, opts ...RegistryOption) *Registry {
	r := &Registry{
		booking: booking,
		codes:   codes,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}

	r.entries = []entry{
		{searchHotelsDef, r.searchHotels},
		{hotelDetailsDef, r.hotelDetails},
		{roomOptionsDef, r.roomOptions},
		{cancellationPolicyDef, r.cancellationPolicy},
		{prebookRoomDef, r.prebookRoom},
		{bookHotelDef, r.bookHotel},
		{bookingStatusDef, r.bookingStatus},
		{cancelBookingDef, r.cancelBooking},
		{clientPreferencesDef, r.clientPreferences},
		{addToItineraryDef, r.addToItinerary},
		{generateQuoteDef, r.generateQuote},
		{suggestActivitiesDef, r.suggestActivities},
	}
	r.byName = make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		r.byName[e.def.Name] = i
	}
	return r
}

// Definitions returns the model-facing tool schemas in declaration order. The
// slice is rebuilt per call so callers cannot mutate the registry.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, len(r.entries))
	for i, e := range r.entries {
		defs[i] = e.def
	}
	return defs
}

// Execute dispatches one tool call by exact name match. A name outside the
// table (the model hallucinating a tool) yields a failure result, never a
// panic or error.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) Result {
	idx, ok := r.byName[name]
	if !ok {
		return Fail("Unknown tool: %s", name)
	}

	start := time.Now()
	result := r.entries[idx].handler(ctx, args)
	r.logger.Debug("tool executed",
		"tool", name,
		"success", result.Success,
		"duration", time.Since(start))
	return result
}
