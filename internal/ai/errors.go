package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// maxErrorBody bounds how much of a failed response body is kept on a
// TransportError.
const maxErrorBody = 512

// TransportError is a failed request: no response, or a non-2xx status.
type TransportError struct {
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("generation request failed with status %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("generation request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmptyResponseError means the response carried no candidate text.
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	if e.Reason == "" {
		return "empty response from model"
	}
	return "empty response from model: " + e.Reason
}

// ParseError means the candidate text was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError means the candidate text was valid JSON but not a deck.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "model response does not match deck schema: " + strings.Join(e.Problems, "; ")
}

// Error kinds reported by Kind.
const (
	KindTransport     = "transport"
	KindEmptyResponse = "empty_response"
	KindParse         = "parse"
	KindSchema        = "schema"
	KindCanceled      = "canceled"
	KindUnknown       = "unknown"
)

// Kind names the failure class of err for logs and metrics.
func Kind(err error) string {
	var (
		transportErr *TransportError
		emptyErr     *EmptyResponseError
		parseErr     *ParseError
		schemaErr    *SchemaError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &schemaErr):
		return KindSchema
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &emptyErr):
		return KindEmptyResponse
	case errors.As(err, &transportErr):
		return KindTransport
	case isCanceled(err):
		return KindCanceled
	default:
		return KindUnknown
	}
}

// RetryAll treats every failure as retryable. It is the default policy.
func RetryAll(error) bool {
	return true
}

// RetryTransient retries transport failures and empty responses but gives up
// at once on responses that arrived and could not be read as a deck.
func RetryTransient(err error) bool {
	switch Kind(err) {
	case KindParse, KindSchema:
		return false
	}
	return true
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
