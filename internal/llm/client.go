package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task           TaskType
	SystemPrompt   string
	UserPrompt     string
	Temperature    *float64 // nil uses task default
	ResponseSchema *Schema  // nil requests free text
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewClient builds a client for the configured provider. A new client is
// cheap; callers build one per credential.
func NewClient(ctx context.Context, cfg LLMConfig, apiKey string, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg, apiKey, observer)
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func (c LLMConfig) temperature(req GenerateRequest) float64 {
	if req.Temperature != nil {
		return *req.Temperature
	}
	return c.Tasks[req.Task].Temperature
}

// contextError reports a request cut short by its context. Only a deadline
// is ErrTimeout; a cancellation keeps context.Canceled in the chain. cause
// stays wrapped either way.
func contextError(ctx context.Context, cause error) error {
	label := ctx.Err()
	if errors.Is(label, context.DeadlineExceeded) {
		label = ErrTimeout
	}
	if cause == nil {
		return label
	}
	return fmt.Errorf("%w: %w", label, cause)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_API_KEY"
	default:
		return "UNKNOWN"
	}
}
