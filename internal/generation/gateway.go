// Package generation asks a language model for lesson content and reports
// failures as credential, empty-response or generic generation errors.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/splanner/internal/content"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/llm"
)

// Request names the lesson to generate content for.
type Request struct {
	Topic   string
	Grade   string
	Subject string
}

// Result is a successful generation.
type Result struct {
	Content   *content.PartialContent
	Model     string
	LatencyMs int64
}

// ClientFactory builds an LLM client bound to one API key.
type ClientFactory func(ctx context.Context, cfg llm.LLMConfig, apiKey string) (llm.LLMClient, error)

// Gateway generates lesson content. It keeps no client between calls: each
// Generate builds one from the credential it is given.
type Gateway interface {
	Generate(ctx context.Context, cred domain.Credential, req Request) (*Result, error)
	Model() string
	// NeedsCredential is false for providers that take no API key.
	NeedsCredential() bool
}

type gateway struct {
	cfg       llm.LLMConfig
	newClient ClientFactory
}

// NewGateway creates a Gateway that builds provider clients with llm.NewClient.
func NewGateway(cfg llm.LLMConfig, observer llm.Observer) Gateway {
	return NewGatewayWithFactory(cfg, func(ctx context.Context, cfg llm.LLMConfig, apiKey string) (llm.LLMClient, error) {
		return llm.NewClient(ctx, cfg, apiKey, observer)
	})
}

// NewGatewayWithFactory creates a Gateway with a custom client factory.
func NewGatewayWithFactory(cfg llm.LLMConfig, factory ClientFactory) Gateway {
	return &gateway{cfg: cfg, newClient: factory}
}

func (g *gateway) Model() string {
	return g.cfg.Model
}

func (g *gateway) NeedsCredential() bool {
	return g.cfg.Provider.NeedsAPIKey()
}

func (g *gateway) Generate(ctx context.Context, cred domain.Credential, req Request) (*Result, error) {
	client, err := g.newClient(ctx, g.cfg, cred.APIKey)
	if err != nil {
		return nil, classify(err)
	}

	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:           llm.TaskLessonContent,
		UserPrompt:     BuildPrompt(req),
		ResponseSchema: LessonContentSchema(),
	})
	if err != nil {
		return nil, classify(err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyResponse
	}

	pc, err := llm.ExtractJSON[content.PartialContent](resp.Text, nil)
	if err != nil {
		return nil, &FailedError{Err: fmt.Errorf("decoding lesson content: %w", err)}
	}

	model := resp.Model
	if model == "" {
		model = g.cfg.Model
	}
	return &Result{Content: &pc, Model: model, LatencyMs: resp.LatencyMs}, nil
}
