// Package config assembles application configuration from a .env file, an
// optional YAML file and SPLANNER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/splanner/internal/llm"
)

// AppConfig is the resolved configuration of one run.
type AppConfig struct {
	DBPath    string
	LogLevel  string
	LogFormat string
	LLM       llm.LLMConfig
}

// fileConfig mirrors config.yaml. Zero values mean "not set".
type fileConfig struct {
	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	LLM struct {
		Provider    string   `yaml:"provider"`
		Model       string   `yaml:"model"`
		Endpoint    string   `yaml:"endpoint"`
		TimeoutMs   int      `yaml:"timeout_ms"`
		MaxRetries  *int     `yaml:"max_retries"`
		Temperature *float64 `yaml:"temperature"`
		LogCalls    bool     `yaml:"log_calls"`
	} `yaml:"llm"`
}

// Dir returns ~/.splanner.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".splanner"), nil
}

// Load builds the configuration. An empty path reads ~/.splanner/config.yaml
// if it exists; an explicit path must exist.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		DBPath:    filepath.Join(dir, "splanner.db"),
		LogLevel:  "warn",
		LogFormat: "text",
		LLM:       llm.DefaultConfig(),
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		fc.apply(cfg)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *AppConfig) {
	if fc.DB.Path != "" {
		cfg.DBPath = expandHome(fc.DB.Path)
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}

	l := &cfg.LLM
	if fc.LLM.Provider != "" {
		l.Provider = llm.Provider(fc.LLM.Provider)
		if l.Provider == llm.ProviderOllama {
			l.Model = llm.DefaultOllamaModel
			l.Endpoint = "http://localhost:11434"
		}
	}
	if fc.LLM.Model != "" {
		l.Model = fc.LLM.Model
	}
	if fc.LLM.Endpoint != "" {
		l.Endpoint = fc.LLM.Endpoint
	}
	if fc.LLM.TimeoutMs > 0 {
		l.TimeoutMs = fc.LLM.TimeoutMs
	}
	if fc.LLM.MaxRetries != nil && *fc.LLM.MaxRetries >= 0 {
		l.MaxRetries = *fc.LLM.MaxRetries
	}
	if fc.LLM.Temperature != nil {
		tc := l.Tasks[llm.TaskLessonContent]
		tc.Temperature = *fc.LLM.Temperature
		l.Tasks[llm.TaskLessonContent] = tc
	}
	if fc.LLM.LogCalls {
		l.LogCalls = true
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("SPLANNER_DB"); v != "" {
		cfg.DBPath = expandHome(v)
	}
	if v := os.Getenv("SPLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SPLANNER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	llm.ApplyEnv(&cfg.LLM)
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
