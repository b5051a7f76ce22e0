// Package config provides the configuration schema and loader for the
// copilot server.
package config

// LogLevel controls log verbosity for the copilot server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// LLMBackend selects how the agent talks to its chat model.
type LLMBackend string

const (
	// BackendOpenAI talks to an OpenAI-compatible endpoint directly.
	BackendOpenAI LLMBackend = "openai"

	// BackendAnyLLM routes through an any-llm gateway, which proxies many
	// upstream providers behind one API.
	BackendAnyLLM LLMBackend = "anyllm"
)

// IsValid reports whether b is a recognised LLM backend.
func (b LLMBackend) IsValid() bool {
	return b == BackendOpenAI || b == BackendAnyLLM
}

// Config is the root configuration structure for the copilot.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Booking BookingConfig `yaml:"booking"`
	Voice   VoiceConfig   `yaml:"voice"`
	Agent   AgentConfig   `yaml:"agent"`
}

// ServerConfig holds network and logging settings for the copilot server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// LLMConfig selects and configures the chat model backing the agent loop.
type LLMConfig struct {
	// Backend selects the provider implementation ("openai" or "anyllm").
	Backend LLMBackend `yaml:"backend"`

	// APIKey is the authentication key for the backend.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the backend's default API endpoint.
	// Leave empty to use the backend's built-in default.
	BaseURL string `yaml:"base_url"`

	// Model selects the chat model (e.g., "openai/gpt-oss-120b").
	Model string `yaml:"model"`

	// Temperature is the sampling temperature for chat completions.
	// 0 means the backend default.
	Temperature float64 `yaml:"temperature"`
}

// BookingConfig holds credentials for the hotel booking API.
type BookingConfig struct {
	// APIURL is the booking API base URL.
	APIURL string `yaml:"api_url"`

	// Username authenticates against the booking API (HTTP basic auth).
	Username string `yaml:"username"`

	// Password authenticates against the booking API (HTTP basic auth).
	Password string `yaml:"password"`
}

// VoiceConfig configures the speech-to-text and text-to-speech providers.
// Both run against the Groq audio API; voice features are disabled when
// APIKey is empty.
type VoiceConfig struct {
	// APIKey is the Groq API key used for both transcription and synthesis.
	APIKey string `yaml:"api_key"`

	// STTModel selects the transcription model. Default: "whisper-large-v3-turbo".
	STTModel string `yaml:"stt_model"`

	// TTSModel selects the synthesis model. Default: "canopylabs/orpheus-v1-english".
	TTSModel string `yaml:"tts_model"`

	// Voice is the default synthesis voice. Default: "tara".
	Voice string `yaml:"voice"`
}

// AgentConfig holds tuning knobs for the agent loop.
type AgentConfig struct {
	// MaxRounds bounds the number of model round-trips per run. 0 means the
	// built-in default.
	MaxRounds int `yaml:"max_rounds"`
}
