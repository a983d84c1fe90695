package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEvent(t *testing.T, event UseCaseEvent) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewJSONHandler(&buf, nil)))
	obs.ObserveUseCase(context.Background(), event)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogUseCaseObserver_Levels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "INFO"},
		{"empty topic", ErrEmptyTopic, "WARN"},
		{"busy", ErrGenerationInProgress, "WARN"},
		{"failure", errors.New("gateway down"), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := logEvent(t, UseCaseEvent{Name: "lesson.generate", Err: tt.err, Success: tt.err == nil})
			assert.Equal(t, tt.want, line["level"])
			assert.Equal(t, "service_use_case", line["msg"])
		})
	}
}

func TestLogUseCaseObserver_GroupsFields(t *testing.T) {
	line := logEvent(t, UseCaseEvent{
		Name:     "lesson.generate",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"model": "gemini-2.5-flash"},
	})

	assert.EqualValues(t, 1500, line["duration_ms"])
	fields, ok := line["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-flash", fields["model"])
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
