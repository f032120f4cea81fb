// Package rop defines Result[L, R], a value that is either a Failure carrying
// an L or a Success carrying an R, together with the combinators that keep a
// computation on the success track until something fails.
//
// Highlights:
// - Success/Failure: construct a Result
// - Map/MapFailure/FlatMap/Fold/Bimap: type-changing combinators (functions)
// - Filter/FilterOrElse/Recover/RecoverWith/OrElse/Peek/Swap: methods
// - Sequence/SequenceAll: collect many results into one
// - ProjectFailure/ProjectSuccess: one-sided views for symmetric chaining
// - Option and the Value contract shared by all single-value containers
//
// Results are immutable values and safe to share between goroutines.
package rop
