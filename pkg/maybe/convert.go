package maybe

import (
	"iter"

	"github.com/ib-77/maybe3/internal/check"
	"github.com/ib-77/maybe3/pkg/either"
	"github.com/ib-77/maybe3/pkg/result"
)

// AsEither converts to an Either whose Right side represents presence:
// Just(v) becomes Right(v), Nothing becomes Left(leftOnNothing). A nil
// leftOnNothing panics even on the Just path, since the caller's contract
// is already broken.
func AsEither[T, L any](m Maybe[T], leftOnNothing L) either.Either[L, T] {
	if check.IsNil(leftOnNothing) {
		panic("maybe: AsEither called with nil left value")
	}
	if m.hasValue {
		return either.Right[L](m.value)
	}
	return either.Left[L, T](leftOnNothing)
}

// AsEitherLazy is AsEither with a deferred left value; the factory runs
// only on the Nothing path. A factory that produces nil panics.
func AsEitherLazy[T, L any](m Maybe[T], factory func() L) either.Either[L, T] {
	if factory == nil {
		panic("maybe: AsEitherLazy called with nil factory")
	}
	if m.hasValue {
		return either.Right[L](m.value)
	}
	return either.Left[L, T](factory())
}

// AsResult converts to an operation outcome: Just(v) becomes a succeeded
// result wrapping v and the supplied errors are ignored; Nothing becomes a
// failed result carrying them. Zero-value Error entries are dropped and an
// absent list is a failure with no recorded reasons.
func AsResult[T any](m Maybe[T], errs ...result.Error) result.Of[T] {
	if m.hasValue {
		return result.Create(m.value)
	}
	return result.FailedOf[T](errs...)
}

// AsResultLazy is AsResult with a deferred error list; the factory runs
// only on the Nothing path. A factory returning a nil slice yields a
// failure with no recorded reasons.
func AsResultLazy[T any](m Maybe[T], factory func() []result.Error) result.Of[T] {
	if factory == nil {
		panic("maybe: AsResultLazy called with nil factory")
	}
	if m.hasValue {
		return result.Create(m.value)
	}
	return result.FailedOf[T](factory()...)
}

// JustValues unwraps a sequence of Maybes into a lazy sequence of the
// values held by the Just elements, in order, skipping Nothing elements.
func JustValues[T any](seq iter.Seq[Maybe[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for m := range seq {
			if !m.hasValue {
				continue
			}
			if !yield(m.value) {
				return
			}
		}
	}
}
