package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the top-level exit status mapping.
type Kind int

const (
	KindRuntime Kind = iota
	KindUsage
	KindIO
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindService:
		return "service"
	default:
		return "runtime"
	}
}

// Error attaches a Kind to an underlying error.
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

// Usage builds a usage error from a format string.
func Usage(format string, args ...interface{}) error {
	return &Error{Kind: KindUsage, Err: fmt.Errorf(format, args...)}
}

// IO marks err as a file-system failure. A nil err stays nil.
func IO(err error) error {
	return wrap(KindIO, err)
}

// Service marks err as a completion service failure. A nil err stays nil.
func Service(err error) error {
	return wrap(KindService, err)
}

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the outermost Kind found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRuntime
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindIO:
		return 2
	case KindService:
		return 3
	default:
		return 1
	}
}
