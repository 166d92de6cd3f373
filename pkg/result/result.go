package result

import (
	"strings"

	"github.com/ib-77/maybe3/internal/check"
)

// Result is a void operation outcome: succeeded, or failed with an ordered
// list of Error values. The zero value is a failed result with no errors.
type Result struct {
	succeeded bool
	errors    []Error
}

func Success() Result {
	return Result{
		succeeded: true,
	}
}

// Failed builds a failed result from the given errors, preserving order.
// Zero-value Error entries are dropped; no entries at all is still a
// failure, just one without recorded reasons.
func Failed(errs ...Error) Result {
	return Result{
		succeeded: false,
		errors:    filterErrors(errs),
	}
}

// FromError builds a failed result carrying a single error. It replaces the
// implicit Error-to-Result conversion of other ecosystems with a named
// constructor, so the conversion stays visible at call sites.
func FromError(err Error) Result {
	return Failed(err)
}

func (r Result) IsSuccess() bool {
	return r.succeeded
}

func (r Result) IsFailure() bool {
	return !r.succeeded
}

// Errors returns the recorded failure reasons in order. The returned slice
// is a copy; mutating it does not affect the result.
func (r Result) Errors() []Error {
	if len(r.errors) == 0 {
		return nil
	}
	out := make([]Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// String renders "Success", or "Failed: " followed by the comma-joined
// errors. Diagnostics only.
func (r Result) String() string {
	if r.succeeded {
		return "Success"
	}

	parts := make([]string, len(r.errors))
	for i, e := range r.errors {
		parts[i] = e.Error()
	}
	return "Failed: " + strings.Join(parts, ", ")
}

// Of is a Result that carries a success payload of type T. The payload is
// non-nil whenever IsSuccess reports true.
type Of[T any] struct {
	Result
	value T
}

// Create builds a succeeded Of[T] wrapping item. It panics when item is
// nil; a missing value is Nothing or a failed result, never a nil success.
func Create[T any](item T) Of[T] {
	if check.IsNil(item) {
		panic("result: Create called with nil item")
	}
	return Of[T]{
		Result: Success(),
		value:  item,
	}
}

// FailedOf builds a failed Of[T] from the given errors, with the same
// filtering rules as Failed.
func FailedOf[T any](errs ...Error) Of[T] {
	return Of[T]{
		Result: Failed(errs...),
	}
}

// FromErrorOf builds a failed Of[T] carrying a single error.
func FromErrorOf[T any](err Error) Of[T] {
	return FailedOf[T](err)
}

// Value returns the success payload. It panics when the result is failed;
// inspect IsSuccess first or stay inside the combinator surface.
func (r Of[T]) Value() T {
	if !r.succeeded {
		panic("result: Value called on failed result")
	}
	return r.value
}

func filterErrors(errs []Error) []Error {
	if len(errs) == 0 {
		return nil
	}

	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		if e.IsZero() {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
