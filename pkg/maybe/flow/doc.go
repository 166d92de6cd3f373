// Package flow provides a fluent Chain[T] for synchronous composition of
// Maybe[T] pipelines.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain
// - Then/Map: compose Maybe-returning or plain projections
// - Where: filter the value with a predicate
// - Ensure: trigger a side effect on Just without changing the chain
// - Or/And: join alternative or required chains
// - Maybe/ValueOr/Finally: leave the chain
//
// Chains are values; every step returns a new Chain and short-circuits on
// Nothing without invoking its callback.
package flow
