package errs

import cr "github.com/cockroachdb/errors"

// Error kinds. Every business error belongs to exactly one of these.
var (
	ErrValidation   = cr.New("validation failed")
	ErrUnauthorized = cr.New("unauthorized")
	ErrForbidden    = cr.New("forbidden")
	ErrNotFound     = cr.New("not found")
	ErrInvalidState = cr.New("invalid state")
	ErrConflict     = cr.New("conflicting update")
	ErrUpstream     = cr.New("upstream failure")
)

var kinds = []error{
	ErrValidation,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrInvalidState,
	ErrConflict,
	ErrUpstream,
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind creates a sentinel error belonging to kind. The sentinel keeps its
// own identity, so errors.Is distinguishes two sentinels of the same kind.
func NewKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf returns the kind of err, or ErrUpstream for unclassified errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if cr.Is(err, k) {
			return k
		}
	}
	return ErrUpstream
}

// Upstream wraps err and classifies it as an upstream failure unless it
// already has a kind.
func Upstream(err error, msg string) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if cr.Is(err, k) {
			return cr.Wrap(err, msg)
		}
	}
	return cr.Mark(cr.Wrap(err, msg), ErrUpstream)
}

// Attach returns sentinel with cause kept as detail for logs. errors.Is and
// KindOf see only the sentinel, so the cause's own kind does not leak.
func Attach(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(sentinel, cause)
}
