package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrSourceUnavailable = errors.New("task source unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedPayload  = errors.New("malformed task payload")
)
