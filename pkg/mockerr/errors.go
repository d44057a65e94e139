package mockerr

import "fmt"

// Kind classifies an error without committing callers to a concrete type.
type Kind string

const (
	// ServerFailure means bind or accept failed; fatal for that server.
	ServerFailure Kind = "server_failure"
	// ServerBusy means the pool had no permits and acquisition was cancelled.
	ServerBusy Kind = "server_busy"
	// Deadlock means a mutex or channel was closed out from under a caller.
	Deadlock Kind = "deadlock"
	// ResponseFailure means a response could not be written to the peer.
	ResponseFailure Kind = "response_failure"
	// InvalidStatusCode means a status code outside [100, 999] was supplied.
	InvalidStatusCode Kind = "invalid_status_code"
	// RequestBodyFailure means the request body could not be read.
	RequestBodyFailure Kind = "request_body_failure"
	// ResponseBodyFailure means a response body callback returned an error.
	ResponseBodyFailure Kind = "response_body_failure"
	// FileNotFound means a matcher or body built from a path could not read it.
	FileNotFound Kind = "file_not_found"
)

// Error is a Kind plus optional wrapped context, satisfying errors.Is/As via
// Unwrap and a sentinel value per Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.description(), e.Err)
	}
	return e.Kind.description()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind, so callers can write
// errors.Is(err, mockerr.ErrServerBusy) without a type assertion.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Kind == e.Kind && sentinel.Err == nil
}

func (k Kind) description() string {
	switch k {
	case ServerFailure:
		return "the server is not running"
	case ServerBusy:
		return "the server is busy"
	case Deadlock:
		return "a lock can't be bypassed"
	case ResponseFailure:
		return "could not deliver a response"
	case InvalidStatusCode:
		return "invalid status code"
	case RequestBodyFailure:
		return "failed to read the request body"
	case ResponseBodyFailure:
		return "failed to write the response body"
	case FileNotFound:
		return "file not found"
	default:
		return "unknown error"
	}
}

// New wraps err under kind. Pass a nil err to build a bare sentinel, e.g. for
// use with errors.Is.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Sentinels for errors.Is comparisons against each Kind.
var (
	ErrServerFailure       = New(ServerFailure, nil)
	ErrServerBusy          = New(ServerBusy, nil)
	ErrDeadlock            = New(Deadlock, nil)
	ErrResponseFailure     = New(ResponseFailure, nil)
	ErrInvalidStatusCode   = New(InvalidStatusCode, nil)
	ErrRequestBodyFailure  = New(RequestBodyFailure, nil)
	ErrResponseBodyFailure = New(ResponseBodyFailure, nil)
	ErrFileNotFound        = New(FileNotFound, nil)
)
