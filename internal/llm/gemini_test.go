package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 5000
	return cfg
}

func geminiText(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-3-pro-preview:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gc, _ := body["generationConfig"].(map[string]any)
		assert.Equal(t, "application/json", gc["responseMimeType"])
		assert.NotNil(t, gc["responseSchema"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiText(`{"knowledge":["X"]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), "test-key", NoopObserver{})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:           TaskLessonContent,
		SystemPrompt:   "sys",
		UserPrompt:     "user",
		ResponseSchema: &Schema{Type: TypeObject, Properties: map[string]*Schema{"knowledge": {Type: TypeArray, Items: &Schema{Type: TypeString}}}},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"knowledge":["X"]}`, resp.Text)
}

func TestGeminiClient_Generate_APIErrorIsReachable(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`))
	}))
	defer srv.Close()

	cfg := geminiTestConfig(srv.URL)
	cfg.MaxRetries = 2
	var captured LLMCallEvent
	client, err := NewGeminiClient(context.Background(), cfg, "test-key", &captureObserver{fn: func(e LLMCallEvent) { captured = e }})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskLessonContent, UserPrompt: "user"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Requested entity was not found")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, int32(1), attempts.Load(), "client errors are not retried")
	assert.False(t, captured.Success)
	assert.Equal(t, ProviderGemini, captured.Provider)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "  ", nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClient_ProviderSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	c, err := NewClient(context.Background(), cfg, "", nil)
	require.NoError(t, err)
	assert.NotNil(t, c)

	cfg.Provider = "openai"
	_, err = NewClient(context.Background(), cfg, "k", nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func hangingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body) // lets the server notice the client hanging up
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiClient_Generate_CancelIsNotTimeout(t *testing.T) {
	srv := hangingServer(t)
	client, err := NewGeminiClient(context.Background(), geminiTestConfig(srv.URL), "test-key", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	_, err = client.Generate(ctx, GenerateRequest{Task: TaskLessonContent, UserPrompt: "user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "CANCELED", errorCode(err))
}

func TestGeminiClient_Generate_DeadlineIsTimeout(t *testing.T) {
	srv := hangingServer(t)
	cfg := geminiTestConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.Tasks = map[TaskType]TaskConfig{}
	client, err := NewGeminiClient(context.Background(), cfg, "test-key", nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskLessonContent, UserPrompt: "user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "the upstream cause stays in the chain")
}

func TestContextError(t *testing.T) {
	cause := errors.New("transport closed")

	expired, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-expired.Done()
	err := contextError(expired, cause)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, cause)

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	err = contextError(canceled, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}
