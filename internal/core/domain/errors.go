package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the CLI can choose a message and exit code
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindResolution
	KindTransport
	KindLocalIO
	KindDecode
)

// String returns a short label for the kind
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindResolution:
		return "resolution"
	case KindTransport:
		return "transport"
	case KindLocalIO:
		return "io"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by every flow
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels such as ErrTransport, or errors with an identical message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Msg == "" || t.Msg == e.Msg
}

// Kind sentinels for errors.Is
var (
	ErrUsage      = &Error{Kind: KindUsage}
	ErrResolution = &Error{Kind: KindResolution}
	ErrTransport  = &Error{Kind: KindTransport}
	ErrLocalIO    = &Error{Kind: KindLocalIO}
	ErrDecode     = &Error{Kind: KindDecode}
)

// ErrMissingServer is returned when a bare key is given without a server
var ErrMissingServer = &Error{Kind: KindResolution, Msg: "Expected `server` argument."}

// NewUsageError creates a usage error with a user-facing message
func NewUsageError(msg string) *Error {
	return &Error{Kind: KindUsage, Msg: msg}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err, or KindUnknown if it is not a domain error
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
