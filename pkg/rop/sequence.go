package rop

import (
	"iter"
	"slices"
)

// Sequence turns a sequence of results into a result of all success payloads.
// It stops pulling at the first Failure and returns it.
func Sequence[L, R any](results iter.Seq[Result[L, R]]) Result[L, []R] {
	values := make([]R, 0)
	for r := range results {
		if !r.isSuccess {
			return Failure[[]R](r.failure)
		}
		values = append(values, r.success)
	}
	return Success[L](values)
}

func SequenceSlice[L, R any](results []Result[L, R]) Result[L, []R] {
	return Sequence(slices.Values(results))
}

// SequenceAll consumes the whole sequence and reports every failure payload
// when at least one is present.
func SequenceAll[L, R any](results iter.Seq[Result[L, R]]) Result[[]L, []R] {
	failures := make([]L, 0)
	values := make([]R, 0)
	for r := range results {
		if r.isSuccess {
			values = append(values, r.success)
		} else {
			failures = append(failures, r.failure)
		}
	}
	if len(failures) > 0 {
		return Failure[[]R](failures)
	}
	return Success[[]L](values)
}
