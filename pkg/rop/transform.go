package rop

import "hash/maphash"

// Map applies f to the success payload; a Failure passes through.
func Map[L, R, U any](r Result[L, R], f func(R) U) Result[L, U] {
	if r.isSuccess {
		return Success[L](f(r.success))
	}
	return Failure[U](r.failure)
}

// MapFailure applies f to the failure payload; a Success passes through.
func MapFailure[L, R, U any](r Result[L, R], f func(L) U) Result[U, R] {
	if r.isSuccess {
		return Success[U](r.success)
	}
	return Failure[R](f(r.failure))
}

// MapLeft is MapFailure.
func MapLeft[L, R, U any](r Result[L, R], f func(L) U) Result[U, R] {
	return MapFailure(r, f)
}

// FlatMap returns f(value) for a Success; a Failure passes through.
func FlatMap[L, R, U any](r Result[L, R], f func(R) Result[L, U]) Result[L, U] {
	if r.isSuccess {
		return f(r.success)
	}
	return Failure[U](r.failure)
}

// Fold reduces r to a single value with the function matching its side.
func Fold[L, R, U any](r Result[L, R], onFailure func(L) U, onSuccess func(R) U) U {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return onFailure(r.failure)
}

// Bimap transforms whichever side r holds, keeping the side.
func Bimap[L, R, X, Y any](r Result[L, R], onFailure func(L) X, onSuccess func(R) Y) Result[X, Y] {
	if r.isSuccess {
		return Success[X](onSuccess(r.success))
	}
	return Failure[Y](onFailure(r.failure))
}

func Transform[L, R, U any](r Result[L, R], f func(Result[L, R]) U) U {
	return f(r)
}

// Hash is consistent with == on Result.
func Hash[L, R comparable](seed maphash.Seed, r Result[L, R]) uint64 {
	return maphash.Comparable(seed, r)
}
