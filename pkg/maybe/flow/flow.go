package flow

import (
	"github.com/ib-77/maybe3/pkg/maybe"
)

// Chain wraps a maybe.Maybe to enable fluent chaining.
type Chain[T any] struct {
	m maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe.
func Start[T any](m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{m: m}
}

// FromValue creates a new chain from a non-nil value.
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{m: maybe.Just(value)}
}

// Maybe returns the underlying maybe.Maybe.
func (c Chain[T]) Maybe() maybe.Maybe[T] {
	return c.m
}

// Then composes a function that already returns maybe.Maybe[T].
func (c Chain[T]) Then(onJust func(T) maybe.Maybe[T]) Chain[T] {
	return Chain[T]{m: maybe.Coalesce(c.m, onJust)}
}

// Map transforms the wrapped value, keeping the chain occupied.
func (c Chain[T]) Map(onJust func(T) T) Chain[T] {
	return Chain[T]{m: maybe.CoalesceValue(c.m, onJust)}
}

// Where drops the value when the predicate rejects it.
func (c Chain[T]) Where(pred func(T) bool) Chain[T] {
	return Chain[T]{m: c.m.Where(pred)}
}

// Ensure triggers a side effect on Just without changing the chain.
func (c Chain[T]) Ensure(onJust func(T)) Chain[T] {
	if onJust == nil {
		panic("flow: Ensure called with nil callback")
	}
	if c.m.IsJust() {
		onJust(c.m.Value())
	}
	return c
}

// Or returns the first occupied chain among c and the alternatives, or c
// itself when all are Nothing.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.m.IsJust() {
		return c
	}
	for _, alt := range alternatives {
		if alt.m.IsJust() {
			return alt
		}
	}
	return c
}

// And returns the first Nothing chain among c and the required ones, or
// the last chain when all are occupied.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	if c.m.IsNothing() || len(required) == 0 {
		return c
	}
	last := c
	for _, req := range required {
		if req.m.IsNothing() {
			return req
		}
		last = req
	}
	return last
}

// ValueOr collapses the chain to a plain value with a fallback.
func (c Chain[T]) ValueOr(fallback T) T {
	return c.m.ValueOr(fallback)
}

// Then composes a function that switches the chain to a new value type.
func Then[T, U any](c Chain[T], onJust func(T) maybe.Maybe[U]) Chain[U] {
	return Chain[U]{m: maybe.Coalesce(c.m, onJust)}
}

// Map transforms the chain to a new value type via a plain projection.
func Map[T, U any](c Chain[T], onJust func(T) U) Chain[U] {
	return Chain[U]{m: maybe.CoalesceValue(c.m, onJust)}
}

// Finally collapses the chain to a final value via per-variant handlers.
func Finally[T, U any](c Chain[T], onJust func(T) U, onNothing func() U) U {
	return maybe.MapLazy(c.m, onNothing, onJust)
}
