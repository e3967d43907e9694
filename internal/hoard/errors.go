package hoard

import (
	"errors"

	"github.com/samber/oops"
)

// Error kinds. Every failure returned by this package wraps exactly one of
// these, so callers match with errors.Is.
var (
	ErrTerminated          = errors.New("possession is terminated")
	ErrDeadActor           = errors.New("creature is killed")
	ErrAdmissionDenied     = errors.New("admission denied")
	ErrReleaseDenied       = errors.New("release denied")
	ErrInvalidAnchor       = errors.New("invalid anchor")
	ErrInvalidConstruction = errors.New("invalid construction")
	ErrIllegalTarget       = errors.New("illegal target")
)

// fail wraps kind with a formatted message and key/value context.
func fail(kind error, kv []any, format string, args ...any) error {
	return oops.In("hoard").With(kv...).Wrapf(kind, format, args...)
}
