// Package result models operation outcomes as data: a void Result that is
// either succeeded or failed with an ordered list of Error values, and a
// payload variant Of[T] that additionally carries the success value.
//
// Key operations:
// - NewError: build an immutable {code, description} failure reason
// - Success/Failed/FromError: construct void results
// - Create/FailedOf/FromErrorOf: construct payload results
// - IsSuccess/IsFailure/Errors/Value: inspect an outcome
//
// Failure is never signalled by throwing; a failed Result carries its
// reasons and callers inspect the tag. Only misuse (creating a success
// around a nil payload, reading Value of a failed result) panics.
package result
