package maybe

// Coalesce is monadic bind: it applies a Maybe-producing projection to the
// wrapped value, so steps chain without nested wrapping. Nothing
// short-circuits and the projection is not invoked.
func Coalesce[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if f == nil {
		panic("maybe: Coalesce called with nil projection")
	}
	if !m.hasValue {
		return Nothing[U]()
	}
	return f(m.value)
}

// CoalesceValue applies a plain projection to the wrapped value and lifts
// the outcome: a nil projection result becomes Nothing, anything else
// Just. Nothing short-circuits without invoking the projection.
func CoalesceValue[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if f == nil {
		panic("maybe: CoalesceValue called with nil projection")
	}
	if !m.hasValue {
		return Nothing[U]()
	}
	return From(f(m.value))
}

// Map collapses the Maybe to a plain value: the projection of the wrapped
// value on Just, the fallback on Nothing.
func Map[T, U any](m Maybe[T], fallback U, projection func(T) U) U {
	if projection == nil {
		panic("maybe: Map called with nil projection")
	}
	if !m.hasValue {
		return fallback
	}
	return projection(m.value)
}

// MapLazy is Map with a deferred fallback; the factory runs only on the
// Nothing path.
func MapLazy[T, U any](m Maybe[T], factory func() U, projection func(T) U) U {
	if factory == nil {
		panic("maybe: MapLazy called with nil factory")
	}
	if projection == nil {
		panic("maybe: MapLazy called with nil projection")
	}
	if !m.hasValue {
		return factory()
	}
	return projection(m.value)
}

// Flatten collapses one level of nesting: Just(Just(x)) becomes Just(x),
// everything else Nothing.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if !m.hasValue {
		return Nothing[T]()
	}
	return m.value
}
