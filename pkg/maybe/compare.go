package maybe

import "cmp"

// Equal reports structural equality: two Nothings are equal, two Justs are
// equal when their values are, mixed variants never are.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.hasValue != b.hasValue {
		return false
	}
	if !a.hasValue {
		return true
	}
	return a.value == b.value
}

// EqualFunc is Equal under a caller-supplied equality comparer. The
// comparer is only consulted when both sides are Just.
func EqualFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	if eq == nil {
		panic("maybe: EqualFunc called with nil comparer")
	}
	if a.hasValue != b.hasValue {
		return false
	}
	if !a.hasValue {
		return true
	}
	return eq(a.value, b.value)
}

// Compare orders two Maybes: Nothing sorts before any Just, two Justs
// compare by their values' natural ordering. The result is negative, zero
// or positive, suitable for slices.SortFunc.
func Compare[T cmp.Ordered](a, b Maybe[T]) int {
	if c := compareVariants(a.hasValue, b.hasValue); c != 0 || !a.hasValue {
		return c
	}
	return cmp.Compare(a.value, b.value)
}

// CompareFunc is Compare under a caller-supplied ordering. The comparer is
// only consulted when both sides are Just.
func CompareFunc[T any](a, b Maybe[T], cmpFn func(T, T) int) int {
	if cmpFn == nil {
		panic("maybe: CompareFunc called with nil comparer")
	}
	if c := compareVariants(a.hasValue, b.hasValue); c != 0 || !a.hasValue {
		return c
	}
	return cmpFn(a.value, b.value)
}

func compareVariants(aHas, bHas bool) int {
	switch {
	case aHas == bHas:
		return 0
	case aHas:
		return 1
	default:
		return -1
	}
}

// Is reports whether m is a Just wrapping exactly candidate.
func Is[T comparable](m Maybe[T], candidate T) bool {
	return m.hasValue && m.value == candidate
}

// IsLazy is Is with a deferred candidate; the factory runs only when m is
// Just, so building an expensive candidate is skipped on Nothing.
func IsLazy[T comparable](m Maybe[T], factory func() T) bool {
	if factory == nil {
		panic("maybe: IsLazy called with nil factory")
	}
	if !m.hasValue {
		return false
	}
	return m.value == factory()
}

// IsBy is Is under a caller-supplied equality comparer.
func IsBy[T any](m Maybe[T], candidate T, eq func(T, T) bool) bool {
	if eq == nil {
		panic("maybe: IsBy called with nil comparer")
	}
	return m.hasValue && eq(m.value, candidate)
}
