package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"showmarket/types"
)

// ErrInvalidUUID marks an item or listing id that is not a 32-hex uuid.
var ErrInvalidUUID = errors.New("invalid uuid")

// ErrorKind classifies upstream failures.
type ErrorKind string

const (
	ErrorUnknown   ErrorKind = "unknown"
	ErrorCanceled  ErrorKind = "canceled"
	ErrorTimeout   ErrorKind = "timeout"
	ErrorNotFound  ErrorKind = "not_found"
	ErrorRateLimit ErrorKind = "rate_limit"
	ErrorHTTP      ErrorKind = "http"
	ErrorDecode    ErrorKind = "decode"
	ErrorTransport ErrorKind = "transport"
)

// HTTPStatusError captures upstream failures by status code.
type HTTPStatusError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s status %d: %s", e.Endpoint, e.Status, e.Body)
}

// ClassifyError maps an error returned by Client to an ErrorKind.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorUnknown
	}
	if errors.Is(err, context.Canceled) {
		return ErrorCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Status {
		case http.StatusNotFound:
			return ErrorNotFound
		case http.StatusTooManyRequests:
			return ErrorRateLimit
		default:
			return ErrorHTTP
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.Is(err, types.ErrMalformedEntry) || errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrorDecode
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout
	}

	return ErrorTransport
}

// ActionableError returns a short hint for err, or "" when there is none.
func ActionableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidUUID) {
		return "That id is not a valid card uuid."
	}

	switch ClassifyError(err) {
	case ErrorCanceled:
		return ""
	case ErrorTimeout:
		return "The Show API timed out. Press r to retry."
	case ErrorNotFound:
		return "Not found on the marketplace. It may have been removed."
	case ErrorRateLimit:
		return "The Show API is rate limiting. Try again in 60s."
	case ErrorDecode:
		return "The Show API sent data that could not be read."
	case ErrorHTTP:
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.Status >= 500 {
			return fmt.Sprintf("The Show API service error (%d). Try again shortly.", statusErr.Status)
		}
		if statusErr != nil {
			return fmt.Sprintf("The Show API request failed (%d).", statusErr.Status)
		}
		return "The Show API request failed."
	default:
		return "Could not reach The Show API. Check your connection."
	}
}

func summarizeHTTPBody(body []byte) string {
	trimmed := strings.Join(strings.Fields(string(body)), " ")
	if trimmed == "" {
		return "empty response body"
	}
	if len(trimmed) > 120 {
		return trimmed[:117] + "..."
	}
	return trimmed
}
