// Package solo contains single-value, synchronous primitives for the error
// railway, rop.Result[error, T]. They bridge Go's (value, error) convention
// and Result without channels.
//
// Highlights:
// - Succeed/Fail/Of/Unpack: move between (T, error) and Result[error, T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[error, In] to Result[error, Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
