package config_test

import (
	"strings"
	"testing"

	"github.com/khoj-travel/copilot/internal/config"
)

const validYAML = `
server:
  listen_addr: ":9090"
  log_level: debug
llm:
  backend: anyllm
  api_key: test-key
  model: openai/gpt-oss-120b
booking:
  username: agent
  password: secret
voice:
  api_key: groq-key
agent:
  max_rounds: 7
`

func TestLoadFromReader_Valid(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader(validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q, want :9090", cfg.Server.ListenAddr)
	}
	if cfg.LLM.Backend != config.BackendAnyLLM {
		t.Errorf("backend = %q, want anyllm", cfg.LLM.Backend)
	}
	if cfg.Agent.MaxRounds != 7 {
		t.Errorf("max_rounds = %d, want 7", cfg.Agent.MaxRounds)
	}
}

func TestLoadFromReader_Defaults(t *testing.T) {
	t.Parallel()
	yaml := `
llm:
  api_key: test-key
booking:
  username: agent
  password: secret
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != config.DefaultListenAddr {
		t.Errorf("listen_addr = %q, want %q", cfg.Server.ListenAddr, config.DefaultListenAddr)
	}
	if cfg.LLM.Backend != config.BackendOpenAI {
		t.Errorf("backend = %q, want openai", cfg.LLM.Backend)
	}
	if cfg.LLM.Model != config.DefaultModel {
		t.Errorf("model = %q, want %q", cfg.LLM.Model, config.DefaultModel)
	}
	if cfg.Booking.APIURL != config.DefaultBookingURL {
		t.Errorf("booking api_url = %q, want %q", cfg.Booking.APIURL, config.DefaultBookingURL)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	t.Parallel()
	yaml := `
llm:
  backend: openai
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for missing credentials, got nil")
	}
	for _, want := range []string{"llm.api_key", "booking.username", "booking.password"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s, got: %v", want, err)
		}
	}
}

func TestValidate_InvalidBackend(t *testing.T) {
	t.Parallel()
	yaml := `
llm:
  backend: bard
  api_key: test-key
booking:
  username: agent
  password: secret
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for invalid backend, got nil")
	}
	if !strings.Contains(err.Error(), "llm.backend") {
		t.Errorf("error should mention llm.backend, got: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  log_level: verbose
llm:
  api_key: test-key
booking:
  username: agent
  password: secret
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
	if !strings.Contains(err.Error(), "server.log_level") {
		t.Errorf("error should mention server.log_level, got: %v", err)
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()
	yaml := `
llm:
  api_key: test-key
  temprature: 0.5
booking:
  username: agent
  password: secret
`
	if _, err := config.LoadFromReader(strings.NewReader(yaml)); err == nil {
		t.Fatal("expected decode error for unknown field, got nil")
	}
}

func TestValidate_NegativeMaxRounds(t *testing.T) {
	t.Parallel()
	yaml := `
llm:
  api_key: test-key
booking:
  username: agent
  password: secret
agent:
  max_rounds: -1
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for negative max_rounds, got nil")
	}
	if !strings.Contains(err.Error(), "agent.max_rounds") {
		t.Errorf("error should mention agent.max_rounds, got: %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()
	if got := config.LogDebug.SlogLevel().String(); got != "DEBUG" {
		t.Errorf("debug maps to %s", got)
	}
	if got := config.LogLevel("").SlogLevel().String(); got != "INFO" {
		t.Errorf("empty level maps to %s, want INFO", got)
	}
}
