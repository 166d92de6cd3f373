// Package maybe provides an optional-value container Maybe[T] that is
// either Just(value) with a guaranteed non-nil value, or Nothing. The zero
// value of Maybe[T] is Nothing, so uninitialized fields behave safely.
//
// Highlights:
// - Just/Nothing/From/FromPtr: construct a Maybe
// - Value/ValueOr/ValueOrFunc/ValueOrZero/ValueOrPanic: read the value
// - Coalesce/CoalesceValue/Flatten: chain Maybe-producing steps (bind)
// - Map/MapLazy: collapse to a plain value with a fallback
// - Where/Guard/GuardLazy/GuardBy/Is/IsLazy/IsBy: filter and test
// - Equal/EqualFunc/Compare/CompareFunc: structural equality and ordering
// - AsEither/AsResult/AsNullable/Seq/JustValues: convert to other shapes
//
// Deferred factories passed to the *Lazy forms and ValueOrFunc are invoked
// at most once and never on the short-circuit path: a Just never evaluates
// its fallback factory, a Nothing never evaluates its projection. That
// laziness is part of the contract, not an optimization.
//
// All operations are pure and synchronous. Instances are immutable, freely
// copyable and safe for concurrent use. Misuse (nil required arguments,
// Value on Nothing) panics; a legitimately absent value never does.
package maybe
