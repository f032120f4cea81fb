// Package chain provides a fluent wrapper around rop.Result[error, T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromCall: begin a chain from a result, a value or a (T, error) call
// - Then: switch to a new result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate: fail the chain when a predicate rejects the value
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
