// Command copilot is the main entry point for the Khoj travel copilot server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	anyllmlib "github.com/mozilla-ai/any-llm-go"

	"github.com/khoj-travel/copilot/internal/agent"
	"github.com/khoj-travel/copilot/internal/agent/tools"
	"github.com/khoj-travel/copilot/internal/config"
	"github.com/khoj-travel/copilot/internal/health"
	"github.com/khoj-travel/copilot/internal/observe"
	"github.com/khoj-travel/copilot/internal/server"
	"github.com/khoj-travel/copilot/internal/tbo"
	"github.com/khoj-travel/copilot/pkg/provider/llm"
	"github.com/khoj-travel/copilot/pkg/provider/llm/anyllm"
	llmopenai "github.com/khoj-travel/copilot/pkg/provider/llm/openai"
	sttgroq "github.com/khoj-travel/copilot/pkg/provider/stt/groq"
	ttsgroq "github.com/khoj-travel/copilot/pkg/provider/tts/groq"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "copilot: config file %q not found — copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "copilot: %v\n", err)
		}
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("copilot starting",
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"llm_backend", cfg.LLM.Backend,
		"model", cfg.LLM.Model,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "copilot"})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()
	metrics := observe.DefaultMetrics()

	// ── Booking API ───────────────────────────────────────────────────────────
	booking, err := tbo.NewClient(cfg.Booking.APIURL, cfg.Booking.Username, cfg.Booking.Password)
	if err != nil {
		slog.Error("failed to create booking client", "err", err)
		return 1
	}
	codes := tbo.NewCodeCache(booking)

	// ── LLM provider ──────────────────────────────────────────────────────────
	provider, err := buildLLM(cfg.LLM)
	if err != nil {
		slog.Error("failed to create llm provider", "err", err)
		return 1
	}

	// ── Agent runner ──────────────────────────────────────────────────────────
	registry := tools.NewRegistry(booking, codes, tools.WithLogger(logger))
	runnerOpts := []agent.RunnerOption{
		agent.WithLogger(logger),
		agent.WithRecorder(metrics),
	}
	if cfg.Agent.MaxRounds > 0 {
		runnerOpts = append(runnerOpts, agent.WithMaxRounds(cfg.Agent.MaxRounds))
	}
	if cfg.LLM.Temperature > 0 {
		runnerOpts = append(runnerOpts, agent.WithTemperature(cfg.LLM.Temperature))
	}
	runner := agent.NewRunner(provider, registry, runnerOpts...)

	// ── HTTP server ───────────────────────────────────────────────────────────
	srvOpts := []server.Option{
		server.WithLogger(logger),
		server.WithMetrics(metrics),
		server.WithHealth(health.New(health.Checker{
			Name: "booking-api",
			Check: func(ctx context.Context) error {
				_, err := codes.Codes(ctx, "115936") // Dubai, the busiest market
				return err
			},
		})),
	}
	if cfg.Voice.APIKey != "" {
		var sttOpts []sttgroq.Option
		if cfg.Voice.STTModel != "" {
			sttOpts = append(sttOpts, sttgroq.WithModel(cfg.Voice.STTModel))
		}
		sttProv, err := sttgroq.New(cfg.Voice.APIKey, sttOpts...)
		if err != nil {
			slog.Error("failed to create stt provider", "err", err)
			return 1
		}

		var ttsOpts []ttsgroq.Option
		if cfg.Voice.TTSModel != "" {
			ttsOpts = append(ttsOpts, ttsgroq.WithModel(cfg.Voice.TTSModel))
		}
		if cfg.Voice.Voice != "" {
			ttsOpts = append(ttsOpts, ttsgroq.WithDefaultVoice(cfg.Voice.Voice))
		}
		ttsProv, err := ttsgroq.New(cfg.Voice.APIKey, ttsOpts...)
		if err != nil {
			slog.Error("failed to create tts provider", "err", err)
			return 1
		}

		srvOpts = append(srvOpts, server.WithSTT(sttProv), server.WithTTS(ttsProv, cfg.Voice.Voice))
		slog.Info("voice endpoints enabled", "stt_model", cfg.Voice.STTModel, "tts_model", cfg.Voice.TTSModel)
	}

	srv := server.New(runner, srvOpts...)
	httpSrv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server ready — press Ctrl+C to shut down", "addr", cfg.Server.ListenAddr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
			return 1
		}
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received, stopping…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// buildLLM creates the chat provider selected by the config. The "openai"
// backend talks to any OpenAI-compatible endpoint directly; "anyllm" routes
// through an any-llm gateway.
func buildLLM(cfg config.LLMConfig) (llm.Provider, error) {
	switch cfg.Backend {
	case config.BackendAnyLLM:
		opts := []anyllmlib.Option{anyllmlib.WithAPIKey(cfg.APIKey)}
		if cfg.BaseURL != "" {
			opts = append(opts, anyllmlib.WithBaseURL(cfg.BaseURL))
		}
		return anyllm.New("groq", cfg.Model, opts...)
	case config.BackendOpenAI:
		var opts []llmopenai.Option
		if cfg.BaseURL != "" {
			opts = append(opts, llmopenai.WithBaseURL(cfg.BaseURL))
		}
		return llmopenai.New(cfg.APIKey, cfg.Model, opts...)
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
