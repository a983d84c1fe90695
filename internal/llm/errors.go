package llm

import "errors"

// Provider errors. Callers match them with errors.Is; providers wrap them with
// the underlying cause.
var (
	ErrUnavailable     = errors.New("llm server unavailable")
	ErrTimeout         = errors.New("llm request timed out")
	ErrInvalidOutput   = errors.New("invalid llm output format")
	ErrRetryExhausted  = errors.New("llm retry attempts exhausted")
	ErrMissingAPIKey   = errors.New("llm api key missing")
	ErrUnknownProvider = errors.New("unknown llm provider")
)
