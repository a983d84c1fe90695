package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient on the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient bound to apiKey. Upstream API errors
// are wrapped, not translated, so callers can inspect *genai.APIError.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, apiKey string, observer Observer) (LLMClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(c.cfg.temperature(req))),
	}
	if req.SystemPrompt != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.ResponseSchema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = req.ResponseSchema.ToGenai()
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), gc)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Provider:  ProviderGemini,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			model := c.cfg.Model
			if resp.ModelVersion != "" {
				model = resp.ModelVersion
			}
			return &GenerateResponse{
				Text:      resp.Text(),
				Model:     model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryableGemini(err) {
			break
		}
	}

	var err error
	switch {
	case ctx.Err() != nil:
		err = contextError(ctx, lastErr)
	case isConnectionError(lastErr):
		err = fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
	default:
		err = fmt.Errorf("gemini generate: %w", lastErr)
	}
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  ProviderGemini,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: geminiErrorCode(err),
	})
	return nil, err
}

// retryableGemini reports whether err is a server-side or rate-limit failure.
// Client errors (bad key, bad request) are never retried.
func retryableGemini(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return isConnectionError(err)
}

// AsAPIError finds a Gemini API error in err's chain. The SDK returns it by
// value, but a pointer is accepted too.
func AsAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}

func geminiErrorCode(err error) string {
	if apiErr, ok := AsAPIError(err); ok {
		if apiErr.Status != "" {
			return apiErr.Status
		}
		return fmt.Sprintf("HTTP_%d", apiErr.Code)
	}
	return errorCode(err)
}
