package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by [Validate] when the corresponding field is empty.
const (
	DefaultListenAddr = ":8080"
	DefaultModel      = "openai/gpt-oss-120b"
	DefaultBookingURL = "http://api.tbotechnology.in/TBOHolidays_HotelAPI"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults, and
// validates the result. Useful in tests where configs are constructed from
// string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values and fills in
// defaults for empty fields. It returns a joined error listing all validation
// failures found.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = DefaultListenAddr
	}
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	// LLM
	if cfg.LLM.Backend == "" {
		cfg.LLM.Backend = BackendOpenAI
	}
	if !cfg.LLM.Backend.IsValid() {
		errs = append(errs, fmt.Errorf("llm.backend %q is invalid; valid values: openai, anyllm", cfg.LLM.Backend))
	}
	if cfg.LLM.APIKey == "" {
		errs = append(errs, errors.New("llm.api_key is required"))
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature %.2f is out of range [0, 2]", cfg.LLM.Temperature))
	}

	// Booking API
	if cfg.Booking.APIURL == "" {
		cfg.Booking.APIURL = DefaultBookingURL
	}
	if cfg.Booking.Username == "" {
		errs = append(errs, errors.New("booking.username is required"))
	}
	if cfg.Booking.Password == "" {
		errs = append(errs, errors.New("booking.password is required"))
	}

	// Voice is optional; fill model defaults only when a key is present so
	// the example file stays minimal.
	if cfg.Voice.APIKey == "" {
		slog.Warn("voice.api_key is empty; voice transcription and synthesis will be disabled")
	}

	// Agent
	if cfg.Agent.MaxRounds < 0 {
		errs = append(errs, fmt.Errorf("agent.max_rounds %d must not be negative", cfg.Agent.MaxRounds))
	}

	return errors.Join(errs...)
}

// SlogLevel maps the configured [LogLevel] to an [slog.Level].
// An empty or unknown level maps to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
