package paramset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the build-time and access-time error kinds from the
// taxonomy. Validation failures are reported as [FieldError] values wrapped
// by a [ValidationError]; see [Table.Validate].
var (
	// ErrWrongSize indicates a fixed sequence or tuple's declared length
	// disagreed with the document.
	ErrWrongSize = errors.New("wrong size")
	// ErrMissingRequired indicates a required parameter was absent from
	// the document.
	ErrMissingRequired = errors.New("missing required parameter")
	// ErrExtra indicates a document key had no schema counterpart and was
	// not in the ignored-keys set.
	ErrExtra = errors.New("extra parameter")
	// ErrWrongKind indicates a document value's shape disagreed with the
	// schema's shape at a given key (e.g. a table where a sequence was
	// expected).
	ErrWrongKind = errors.New("wrong parameter kind")
	// ErrCoercion indicates an atom's raw value could not convert to its
	// declared type.
	ErrCoercion = errors.New("coercion failure")
	// ErrUnset indicates a read of an atom that is neither defaulted nor
	// bound.
	ErrUnset = errors.New("value unset")
	// ErrLogic indicates an internal invariant was violated, such as
	// printing a vector sequence with other than one exemplar child.
	ErrLogic = errors.New("internal logic error")
	// ErrCantHappen indicates a traversal downcast failed. Since [Visitor]
	// dispatches strictly on [Param.ParamKind], this should be
	// unreachable; seeing it means a Param implementation reports a Kind
	// its concrete type does not actually support.
	ErrCantHappen = errors.New("cant happen")
)

// FieldError is one reported deviation between a document and a schema,
// always carrying the key at which the deviation was observed.
type FieldError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Err)
}

// Unwrap allows errors.Is/errors.As to see through to the underlying
// sentinel (one of the Err* values in this file).
func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError aggregates every deviation found by [Table.Validate] in
// a single pass, rather than stopping at the first. It implements
// Unwrap() []error so errors.Is and errors.As compose with the standard
// library across the whole batch.
type ValidationError struct {
	Errors []*FieldError
}

// Error implements the error interface, listing every field error.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid document: " + e.Errors[0].Error()
	}

	msg := fmt.Sprintf("invalid document: %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		msg += "\n  - " + fe.Error()
	}

	return msg
}

// Unwrap exposes every field error for errors.Is/errors.As traversal.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}

	return errs
}

// ErrInvalidDocument is the sentinel a [ValidationError] always matches via
// errors.Is, regardless of which individual field errors it carries.
var ErrInvalidDocument = errors.New("invalid document")

// Is implements errors.Is support so that errors.Is(verr, ErrInvalidDocument)
// reports true for any non-empty [ValidationError].
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument && len(e.Errors) > 0
}

func fieldErr(key string, err error) *FieldError {
	return &FieldError{Key: key, Err: err}
}
