// Package either provides a minimal two-variant union: a value that is
// exactly one of a Left or a Right, constructed only through the Left and
// Right factories.
//
// The occupied side is always non-nil; reading the unoccupied side is a
// usage error and panics. No combinator surface is provided on purpose —
// Either is a data carrier for conversions such as maybe.AsEither.
package either
