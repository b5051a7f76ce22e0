// Package server exposes the copilot over HTTP: a Server-Sent Events chat
// endpoint driving the agent loop, voice transcription and synthesis
// endpoints, health probes, and a Prometheus metrics endpoint.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khoj-travel/copilot/internal/agent"
	"github.com/khoj-travel/copilot/internal/health"
	"github.com/khoj-travel/copilot/internal/observe"
	"github.com/khoj-travel/copilot/pkg/provider/stt"
	"github.com/khoj-travel/copilot/pkg/provider/tts"
)

// Server holds the HTTP handler dependencies. Construct with [New]; the zero
// value is not usable.
type Server struct {
	runner  *agent.Runner
	stt     stt.Provider
	tts     tts.Provider
	voice   string
	metrics *observe.Metrics
	logger  *slog.Logger
	health  *health.Handler
}

// Option is a functional option for [New].
type Option func(*Server)

// WithSTT enables the /api/voice/transcribe endpoint.
func WithSTT(p stt.Provider) Option {
	return func(s *Server) { s.stt = p }
}

// WithTTS enables the /api/voice/speak endpoint. voice is the default
// synthesis voice used when a request does not name one.
func WithTTS(p tts.Provider, voice string) Option {
	return func(s *Server) {
		s.tts = p
		s.voice = voice
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics replaces the default metrics instance. Tests use this to avoid
// polluting the global meter provider.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithHealth replaces the default health handler, allowing readiness checkers
// for downstream dependencies to be registered.
func WithHealth(h *health.Handler) Option {
	return func(s *Server) { s.health = h }
}

// New creates a Server around the given agent runner. Voice endpoints return
// 503 until enabled via [WithSTT] and [WithTTS].
func New(runner *agent.Runner, opts ...Option) *Server {
	s := &Server{
		runner: runner,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	if s.health == nil {
		s.health = health.New()
	}
	return s
}

// Routes returns the full handler tree with observability middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/voice/transcribe", s.handleTranscribe)
	mux.HandleFunc("POST /api/voice/speak", s.handleSpeak)
	mux.Handle("GET /metrics", promhttp.Handler())
	s.health.Register(mux)

	return observe.Middleware(s.metrics)(mux)
}

// errorBody is the JSON error envelope for non-streaming failures.
type errorBody struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
