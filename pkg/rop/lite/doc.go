// Package lite provides lightweight bounded fan-out over the error railway.
//
// Common usage:
// - Turnout: run an engine over an indexed input channel with a fixed number of lines
// - Run: fan a slice out and collect the results back in input order
// - Traverse: Run, then collapse into one result where the first failure wins
//
// Worker count and cancellation behavior can be carried on the context with
// core.WithWorkerOptions and core.WithProcessOptions.
package lite
