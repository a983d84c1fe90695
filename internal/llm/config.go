package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskLessonContent TaskType = "lesson_content"
)

// Provider names an LLM backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// NeedsAPIKey reports whether requests to p carry an API key. A local
// Ollama server takes none.
func (p Provider) NeedsAPIKey() bool {
	return p != ProviderOllama
}

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem. API keys are not
// part of it; each client is built with its own.
type LLMConfig struct {
	Provider   Provider
	LogCalls   bool
	Endpoint   string // Ollama base URL, or a Gemini base-URL override
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultGeminiModel is used when no model is configured for the Gemini provider.
const DefaultGeminiModel = "gemini-3-pro-preview"

// DefaultOllamaModel is used when no model is configured for the Ollama provider.
const DefaultOllamaModel = "llama3.2"

// DefaultConfig returns an LLMConfig with sensible defaults. Generation is
// not retried automatically.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderGemini,
		LogCalls:   false,
		Model:      DefaultGeminiModel,
		TimeoutMs:  120000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskLessonContent: {Temperature: 0.4},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg with any SPLANNER_LLM_* variables that are set.
func ApplyEnv(cfg *LLMConfig) {
	if v := os.Getenv("SPLANNER_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
		if cfg.Provider == ProviderOllama && cfg.Model == DefaultGeminiModel {
			cfg.Model = DefaultOllamaModel
		}
		if cfg.Provider == ProviderOllama && cfg.Endpoint == "" {
			cfg.Endpoint = "http://localhost:11434"
		}
	}
	if v := os.Getenv("SPLANNER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SPLANNER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SPLANNER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SPLANNER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SPLANNER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SPLANNER_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			if cfg.Tasks == nil {
				cfg.Tasks = map[TaskType]TaskConfig{}
			}
			tc := cfg.Tasks[TaskLessonContent]
			tc.Temperature = f
			cfg.Tasks[TaskLessonContent] = tc
		}
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
