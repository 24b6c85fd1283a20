package siren

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrUnexpectedResponseCode indicates that the API envelope carried a non-zero code.
	ErrUnexpectedResponseCode = errors.New("unexpected response code")
	// ErrMissingField indicates that a required field is absent from the response.
	ErrMissingField = errors.New("missing required field")
	// ErrResponseTooLarge indicates that a metadata response exceeded the size limit.
	ErrResponseTooLarge = errors.New("response body too large")
)
