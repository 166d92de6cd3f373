package maybe

// Guard keeps a Just whose value equals expected and turns a non-matching
// Just into Nothing. Nothing always stays Nothing.
func Guard[T comparable](m Maybe[T], expected T) Maybe[T] {
	if m.hasValue && m.value == expected {
		return m
	}
	return Nothing[T]()
}

// GuardLazy is Guard with a deferred expected value; the factory runs only
// when m is Just.
func GuardLazy[T comparable](m Maybe[T], factory func() T) Maybe[T] {
	if factory == nil {
		panic("maybe: GuardLazy called with nil factory")
	}
	if m.hasValue && m.value == factory() {
		return m
	}
	return Nothing[T]()
}

// GuardBy is Guard under a caller-supplied equality comparer.
func GuardBy[T any](m Maybe[T], expected T, eq func(T, T) bool) Maybe[T] {
	if eq == nil {
		panic("maybe: GuardBy called with nil comparer")
	}
	if m.hasValue && eq(m.value, expected) {
		return m
	}
	return Nothing[T]()
}

// DefaultIfNothingZero replaces Nothing with Just of T's zero value. For
// reference types whose zero value is nil this panics, as a Just can never
// hold nil; use DefaultIfNothing with an explicit fallback there.
func DefaultIfNothingZero[T any](m Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	var zero T
	return Just(zero)
}
