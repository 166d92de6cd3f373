package maybe

import (
	"fmt"
	"iter"

	"github.com/ib-77/maybe3/internal/check"
)

// Maybe is an optional value: Just(value) or Nothing. A Just never wraps a
// nil value. The zero value is Nothing.
//
// When T is comparable, Maybe[T] is comparable too: it can be used as a map
// key and compared with ==, with Nothing equal only to Nothing.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Just wraps a non-nil value. It panics when value is nil; absence must be
// expressed as Nothing, never smuggled inside a Just.
func Just[T any](value T) Maybe[T] {
	if check.IsNil(value) {
		panic("maybe: Just called with nil value")
	}
	return Maybe[T]{value: value, hasValue: true}
}

// Nothing returns the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From lifts a possibly-nil value: nil becomes Nothing, anything else
// becomes Just.
func From[T any](value T) Maybe[T] {
	if check.IsNil(value) {
		return Maybe[T]{}
	}
	return Maybe[T]{value: value, hasValue: true}
}

// FromPtr lifts a pointer: nil becomes Nothing, otherwise the pointee is
// copied into a Just.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Maybe[T]{}
	}
	return Just(*p)
}

func (m Maybe[T]) IsJust() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNothing() bool {
	return !m.hasValue
}

// Value returns the wrapped value. It panics on Nothing; this is the single
// unchecked accessor, every other read goes through a combinator that
// handles both variants.
func (m Maybe[T]) Value() T {
	if !m.hasValue {
		panic("maybe: Value called on Nothing")
	}
	return m.value
}

// ValueOrPanic returns the wrapped value, or panics with the error produced
// by factory when the Maybe is Nothing. The factory is never invoked on the
// Just path.
func (m Maybe[T]) ValueOrPanic(factory func() error) T {
	if factory == nil {
		panic("maybe: ValueOrPanic called with nil factory")
	}
	if m.hasValue {
		return m.value
	}
	panic(factory())
}

// ValueOr returns the wrapped value, or fallback when Nothing.
func (m Maybe[T]) ValueOr(fallback T) T {
	if m.hasValue {
		return m.value
	}
	return fallback
}

// ValueOrFunc returns the wrapped value, or the factory's result when
// Nothing. The factory is only invoked on the Nothing path.
func (m Maybe[T]) ValueOrFunc(factory func() T) T {
	if m.hasValue {
		return m.value
	}
	return factory()
}

// ValueOrZero returns the wrapped value, or the zero value of T.
func (m Maybe[T]) ValueOrZero() T {
	return m.value
}

// AsNullable returns a pointer to a copy of the wrapped value, or nil when
// Nothing.
func (m Maybe[T]) AsNullable() *T {
	if !m.hasValue {
		return nil
	}
	v := m.value
	return &v
}

// Where keeps a Just whose value satisfies pred and turns everything else
// into Nothing. The predicate is not invoked on Nothing.
func (m Maybe[T]) Where(pred func(T) bool) Maybe[T] {
	if pred == nil {
		panic("maybe: Where called with nil predicate")
	}
	if !m.hasValue {
		return m
	}
	if pred(m.value) {
		return m
	}
	return Maybe[T]{}
}

// DefaultIfNothing replaces Nothing with Just(fallback) and leaves a Just
// untouched. A nil fallback panics.
func (m Maybe[T]) DefaultIfNothing(fallback T) Maybe[T] {
	if m.hasValue {
		return m
	}
	return Just(fallback)
}

// Seq exposes the Maybe as a restartable sequence of zero or one element.
func (m Maybe[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.hasValue {
			yield(m.value)
		}
	}
}

// String renders "Just(v)" or "Nothing" for diagnostics.
func (m Maybe[T]) String() string {
	if m.hasValue {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}
