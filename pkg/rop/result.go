package rop

import (
	"fmt"
	"iter"
	"reflect"
)

// Result holds exactly one of a failure payload L or a success payload R.
//
// The zero value is a Failure carrying the zero L. The slot of the absent side
// is always left at its zero value, so for comparable L and R the == operator
// agrees with Equal.
type Result[L, R any] struct {
	failure   L
	success   R
	isSuccess bool
}

// Success builds a Result on the success side. L is named by the caller and R
// is inferred: Success[error](42).
func Success[L, R any](value R) Result[L, R] {
	return Result[L, R]{
		success:   value,
		isSuccess: true,
	}
}

// Failure builds a Result on the failure side. R is named by the caller and L
// is inferred: Failure[int](errors.New("boom")).
func Failure[R, L any](value L) Result[L, R] {
	return Result[L, R]{
		failure:   value,
		isSuccess: false,
	}
}

func (r Result[L, R]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[L, R]) IsFailure() bool {
	return !r.isSuccess
}

// IsEmpty reports whether there is no success value to read.
func (r Result[L, R]) IsEmpty() bool {
	return !r.isSuccess
}

// Get returns the success payload or ErrWrongVariant.
func (r Result[L, R]) Get() (R, error) {
	if !r.isSuccess {
		var zero R
		return zero, fmt.Errorf("%w: Get on Failure", ErrWrongVariant)
	}
	return r.success, nil
}

// GetFailure returns the failure payload or ErrWrongVariant.
func (r Result[L, R]) GetFailure() (L, error) {
	if r.isSuccess {
		var zero L
		return zero, fmt.Errorf("%w: GetFailure on Success", ErrWrongVariant)
	}
	return r.failure, nil
}

// MustGet is Get that panics on a Failure.
func (r Result[L, R]) MustGet() R {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetFailure is GetFailure that panics on a Success.
func (r Result[L, R]) MustGetFailure() L {
	v, err := r.GetFailure()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[L, R]) GetOrElse(other R) R {
	if r.isSuccess {
		return r.success
	}
	return other
}

// GetOrElseGet computes the fallback from the failure payload.
func (r Result[L, R]) GetOrElseGet(other func(L) R) R {
	if r.isSuccess {
		return r.success
	}
	return other(r.failure)
}

// GetOrError returns the success payload, or the error built from the failure
// payload by toErr.
func (r Result[L, R]) GetOrError(toErr func(L) error) (R, error) {
	if r.isSuccess {
		return r.success, nil
	}
	var zero R
	return zero, toErr(r.failure)
}

func (r Result[L, R]) OrElse(other Result[L, R]) Result[L, R] {
	if r.isSuccess {
		return r
	}
	return other
}

// OrElseGet calls supplier only when r is a Failure, and again on every call.
func (r Result[L, R]) OrElseGet(supplier func() Result[L, R]) Result[L, R] {
	if r.isSuccess {
		return r
	}
	return supplier()
}

func (r Result[L, R]) OrElseRun(action func(L)) {
	if !r.isSuccess {
		action(r.failure)
	}
}

// Filter returns r with a nil error when r is a Failure or pred accepts the
// success payload. A rejected payload yields r and ErrFilterPredicateFailed.
func (r Result[L, R]) Filter(pred func(R) bool) (Result[L, R], error) {
	if !r.isSuccess || pred(r.success) {
		return r, nil
	}
	return r, ErrFilterPredicateFailed
}

func (r Result[L, R]) FilterNot(pred func(R) bool) (Result[L, R], error) {
	return r.Filter(func(v R) bool { return !pred(v) })
}

// FilterOrElse turns a Success rejected by pred into Failure(zero(value)).
func (r Result[L, R]) FilterOrElse(pred func(R) bool, zero func(R) L) Result[L, R] {
	if !r.isSuccess || pred(r.success) {
		return r
	}
	return Failure[R](zero(r.success))
}

func (r Result[L, R]) Recover(f func(L) R) Result[L, R] {
	if r.isSuccess {
		return r
	}
	return Success[L](f(r.failure))
}

func (r Result[L, R]) RecoverWith(f func(L) Result[L, R]) Result[L, R] {
	if r.isSuccess {
		return r
	}
	return f(r.failure)
}

// Swap exchanges the roles of both sides, keeping the payload.
func (r Result[L, R]) Swap() Result[R, L] {
	if r.isSuccess {
		return Failure[L](r.success)
	}
	return Success[R](r.failure)
}

// Peek calls exactly one of the callbacks, on the side r holds.
func (r Result[L, R]) Peek(onFailure func(L), onSuccess func(R)) Result[L, R] {
	if r.isSuccess {
		onSuccess(r.success)
	} else {
		onFailure(r.failure)
	}
	return r
}

func (r Result[L, R]) PeekSuccess(action func(R)) Result[L, R] {
	if r.isSuccess {
		action(r.success)
	}
	return r
}

func (r Result[L, R]) PeekFailure(action func(L)) Result[L, R] {
	if !r.isSuccess {
		action(r.failure)
	}
	return r
}

// All yields the success payload once, or nothing.
func (r Result[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if r.isSuccess {
			yield(r.success)
		}
	}
}

func (r Result[L, R]) ProjectFailure() FailureProjection[L, R] {
	return FailureProjection[L, R]{source: r}
}

func (r Result[L, R]) ProjectSuccess() SuccessProjection[L, R] {
	return SuccessProjection[L, R]{source: r}
}

// Equal reports whether both results hold the same side with deeply equal
// payloads.
func (r Result[L, R]) Equal(other Result[L, R]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.success, other.success)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

func (r Result[L, R]) IsLazy() bool {
	return false
}

func (r Result[L, R]) IsAsync() bool {
	return false
}

func (r Result[L, R]) IsSingleValued() bool {
	return true
}

func (r Result[L, R]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.success)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}
