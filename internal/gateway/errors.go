package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure for presentation and lifecycle decisions:
// ingestion failures reset the session, secondary-action failures stay scoped
// to their control.
type Kind int

const (
	// NetworkFailure means the request could not complete.
	NetworkFailure Kind = iota
	// ServerError means the backend answered with a non-success status.
	ServerError
	// MissingData means the response parsed but a required field was absent.
	MissingData
	// UnsupportedLanguage means the requested target is outside the
	// supported set.
	UnsupportedLanguage
	// UserInputError means the request was rejected before any network call.
	UserInputError
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ServerError:
		return "server error"
	case MissingData:
		return "missing data"
	case UnsupportedLanguage:
		return "unsupported language"
	case UserInputError:
		return "invalid input"
	}
	return "error"
}

// Error is a classified gateway failure.
type Error struct {
	Kind   Kind
	Op     string // endpoint or action, e.g. "enhanced_analysis"
	Status int    // HTTP status for ServerError, 0 otherwise
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := e.Detail
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind, defaulting to NetworkFailure for
// unclassified errors so callers always have a lifecycle decision to act on.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return NetworkFailure
}
