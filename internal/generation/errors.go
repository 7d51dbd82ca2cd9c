package generation

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindEmptyResponse     Kind = "empty_response"
	KindMalformedResponse Kind = "malformed_response"
	KindProvider          Kind = "provider_error"
	KindInvalidRequest    Kind = "invalid_request"
)

var (
	ErrEmptyResponse     = errors.New("empty response")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingAPIKey     = errors.New("gemini api key is not configured")
)

// Error is the failure side of a generation. Kind keeps the cause for logs and tests
// even where the user only sees a generic message.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or "" if err did not come from a generation.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func emptyResponseError() error {
	return &Error{Kind: KindEmptyResponse, Err: ErrEmptyResponse}
}

func malformedResponseError(detail error) error {
	return &Error{Kind: KindMalformedResponse, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, detail)}
}

func providerError(err error) error {
	return &Error{Kind: KindProvider, Err: fmt.Errorf("provider call failed: %w", err)}
}

func invalidRequestError(err error) error {
	return &Error{Kind: KindInvalidRequest, Err: fmt.Errorf("invalid request: %w", err)}
}
