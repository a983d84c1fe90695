package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_GeminiWithoutRetries(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-3-pro-preview", cfg.Model)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 120000, cfg.TaskTimeout(TaskLessonContent))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SPLANNER_LLM_MODEL", "gemini-2.5-flash")
	t.Setenv("SPLANNER_LLM_TIMEOUT_MS", "9000")
	t.Setenv("SPLANNER_LLM_MAX_RETRIES", "2")
	t.Setenv("SPLANNER_LLM_TEMPERATURE", "0.7")
	t.Setenv("SPLANNER_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 0.7, cfg.Tasks[TaskLessonContent].Temperature)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_OllamaProviderDefaults(t *testing.T) {
	t.Setenv("SPLANNER_LLM_PROVIDER", "ollama")

	cfg := LoadConfig()

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("SPLANNER_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("SPLANNER_LLM_MAX_RETRIES", "-1")
	t.Setenv("SPLANNER_LLM_TEMPERATURE", "9")

	cfg := LoadConfig()

	assert.Equal(t, 120000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 0.4, cfg.Tasks[TaskLessonContent].Temperature)
}
