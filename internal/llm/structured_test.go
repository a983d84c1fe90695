package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Knowledge []string `json:"knowledge"`
	Equipment *string  `json:"equipment"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"knowledge":["a","b"]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Knowledge)
	assert.Nil(t, result.Equipment)
}

func TestExtractJSON_FencedJSONWithProse(t *testing.T) {
	raw := "Giáo án:\n```json\n{\"knowledge\":[\"x {y}\"]}\n```\nHết."
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x {y}"}, result.Knowledge)
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := "{\n  \"knowledge\": [\"http://example.com\"], // nguồn\n  \"equipment\": \"SGK\"\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com"}, result.Knowledge)
	require.NotNil(t, result.Equipment)
	assert.Equal(t, "SGK", *result.Equipment)
}

func TestExtractJSON_Errors(t *testing.T) {
	_, err := ExtractJSON[testPayload]("không có JSON", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = ExtractJSON[testPayload](`{"knowledge": "not a list"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = ExtractJSON[testPayload](`{"knowledge": [`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Validator(t *testing.T) {
	validator := func(p testPayload) error {
		if len(p.Knowledge) == 0 {
			return fmt.Errorf("knowledge is required")
		}
		return nil
	}

	_, err := ExtractJSON(`{"knowledge":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")

	result, err := ExtractJSON(`{"knowledge":["k"]}`, validator)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, result.Knowledge)
}

func TestExtractJSON_TrailingProseAfterObject(t *testing.T) {
	raw := "{\"knowledge\":[\"a\"]}\n```\nGhi chú: \"xem lại\" // hết"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Knowledge)
}
