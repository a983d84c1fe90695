package generation

import (
	"errors"
	"strings"

	"github.com/alexanderramin/splanner/internal/llm"
)

var (
	// ErrCredentialUnavailable indicates the credential was rejected or is
	// missing. The user has to select a credential again.
	ErrCredentialUnavailable = errors.New("generation credential unavailable")

	// ErrEmptyResponse indicates the service answered with no text.
	ErrEmptyResponse = errors.New("empty response from generation service")

	// ErrGenerationFailed is matched by every other failure. See FailedError.
	ErrGenerationFailed = errors.New("generation failed")
)

// credentialSignature is the upstream message returned for an unknown or
// revoked API key.
const credentialSignature = "Requested entity was not found"

// FailedError carries the upstream cause of a generation failure. It matches
// both ErrGenerationFailed and the cause with errors.Is.
type FailedError struct {
	Err error
}

func (e *FailedError) Error() string {
	return "generation failed: " + e.Err.Error()
}

func (e *FailedError) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Err}
}

type credentialError struct {
	err error
}

func (e *credentialError) Error() string {
	return ErrCredentialUnavailable.Error() + ": " + e.err.Error()
}

func (e *credentialError) Unwrap() []error {
	return []error{ErrCredentialUnavailable, e.err}
}

// classify maps an upstream error onto the gateway's three failure kinds.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isCredentialFailure(err) {
		return &credentialError{err: err}
	}
	return &FailedError{Err: err}
}

func isCredentialFailure(err error) bool {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return true
	}
	msg := err.Error()
	if strings.Contains(msg, credentialSignature) ||
		strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(msg, "API key not valid") {
		return true
	}
	if apiErr, ok := llm.AsAPIError(err); ok {
		return apiErr.Code == 401 || apiErr.Code == 403
	}
	return false
}

// ErrorCode returns a short stable code for err, used by the generation log.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCredentialUnavailable):
		return "CREDENTIAL_UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, llm.ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, llm.ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, llm.ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "FAILED"
	}
}
