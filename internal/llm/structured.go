package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value. A non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object in a model reply into T.
//
// Models wrap their answer in prose or markdown fences and now and then
// annotate fields with // comments, so decoding starts at the first '{',
// line comments are dropped and anything after the object is ignored.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var out T

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return out, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	dec := json.NewDecoder(strings.NewReader(dropLineComments(raw[start:])))
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(out); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// dropLineComments removes // comments that sit outside string literals.
func dropLineComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	quoted, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				quoted = false
			}
			b.WriteByte(c)
			continue
		}
		if c == '/' && strings.HasPrefix(s[i:], "//") {
			if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
				i += nl - 1
				continue
			}
			break
		}
		if c == '"' {
			quoted = true
		}
		b.WriteByte(c)
	}
	return b.String()
}
