package errkind

import (
	"context"
	"errors"
	"fmt"
)

// Kind represents the category of a failure.
type Kind uint8

const (
	// KindUnknown - failure of an unclassified origin.
	KindUnknown Kind = iota
	// KindUsage - missing or conflicting command-line selectors.
	KindUsage
	// KindTransport - network failure, unexpected HTTP status or failed API response code.
	KindTransport
	// KindDecode - response body does not match the expected JSON shape.
	KindDecode
	// KindFilesystem - create, write, rename or remove failure.
	KindFilesystem
	// KindTranscode - transcoder spawn failure, non-zero exit or unverifiable output.
	KindTranscode
)

// Exit codes returned by the process for each failure kind.
const (
	ExitCodeOK          = 0
	ExitCodeUnknown     = 1
	ExitCodeUsage       = 2
	ExitCodeTransport   = 3
	ExitCodeDecode      = 4
	ExitCodeFilesystem  = 5
	ExitCodeTranscode   = 6
	ExitCodeInterrupted = 130
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown error"
	case KindUsage:
		return "usage error"
	case KindTransport:
		return "transport error"
	case KindDecode:
		return "decode error"
	case KindFilesystem:
		return "filesystem error"
	case KindTranscode:
		return "transcode error"
	default:
		return fmt.Sprintf("unknown kind: %d", k)
	}
}

// ExitCode returns the process exit code for the Kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindUnknown:
		return ExitCodeUnknown
	case KindUsage:
		return ExitCodeUsage
	case KindTransport:
		return ExitCodeTransport
	case KindDecode:
		return ExitCodeDecode
	case KindFilesystem:
		return ExitCodeFilesystem
	case KindTranscode:
		return ExitCodeTranscode
	default:
		return ExitCodeUnknown
	}
}

// Error is a classified failure of an operation.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Op names the operation that failed, e.g. "fetch song 7".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New classifies err under kind. A nil err yields nil.
// Errors that are already classified keep their original kind.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return &Error{Kind: kind, Op: op, Err: err}
}

// Usage classifies err as a usage error.
func Usage(op string, err error) error {
	return New(KindUsage, op, err)
}

// Transport classifies err as a transport error.
func Transport(op string, err error) error {
	return New(KindTransport, op, err)
}

// Decode classifies err as a decode error.
func Decode(op string, err error) error {
	return New(KindDecode, op, err)
}

// Filesystem classifies err as a filesystem error.
func Filesystem(op string, err error) error {
	return New(KindFilesystem, op, err)
}

// Transcode classifies err as a transcode error.
func Transcode(op string, err error) error {
	return New(KindTranscode, op, err)
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	return KindUnknown
}

// Is reports whether err's chain contains a failure of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	if errors.Is(err, context.Canceled) {
		return ExitCodeInterrupted
	}

	return KindOf(err).ExitCode()
}
