package rop

import (
	"fmt"
	"iter"
)

// FailureProjection views a Result with its failure side as the primary one.
type FailureProjection[L, R any] struct {
	source Result[L, R]
}

// SuccessProjection views a Result with its success side as the primary one.
type SuccessProjection[L, R any] struct {
	source Result[L, R]
}

func (p FailureProjection[L, R]) IsEmpty() bool {
	return p.source.isSuccess
}

func (p FailureProjection[L, R]) Get() (L, error) {
	if p.source.isSuccess {
		var zero L
		return zero, fmt.Errorf("%w: FailureProjection.Get on Success", ErrWrongVariant)
	}
	return p.source.failure, nil
}

func (p FailureProjection[L, R]) GetOrElse(other L) L {
	if p.source.isSuccess {
		return other
	}
	return p.source.failure
}

func (p FailureProjection[L, R]) GetOrElseGet(other func(R) L) L {
	if p.source.isSuccess {
		return other(p.source.success)
	}
	return p.source.failure
}

func (p FailureProjection[L, R]) GetOrError(toErr func(R) error) (L, error) {
	if p.source.isSuccess {
		var zero L
		return zero, toErr(p.source.success)
	}
	return p.source.failure, nil
}

func (p FailureProjection[L, R]) OrElse(other FailureProjection[L, R]) FailureProjection[L, R] {
	if p.source.isSuccess {
		return other
	}
	return p
}

func (p FailureProjection[L, R]) OrElseGet(supplier func() FailureProjection[L, R]) FailureProjection[L, R] {
	if p.source.isSuccess {
		return supplier()
	}
	return p
}

func (p FailureProjection[L, R]) OrElseRun(action func(R)) {
	if p.source.isSuccess {
		action(p.source.success)
	}
}

// Filter keeps p when the source is a Success or pred accepts the failure
// payload; otherwise it returns p with ErrFilterPredicateFailed.
func (p FailureProjection[L, R]) Filter(pred func(L) bool) (FailureProjection[L, R], error) {
	if p.source.isSuccess || pred(p.source.failure) {
		return p, nil
	}
	return p, ErrFilterPredicateFailed
}

func (p FailureProjection[L, R]) Peek(action func(L)) FailureProjection[L, R] {
	if !p.source.isSuccess {
		action(p.source.failure)
	}
	return p
}

func (p FailureProjection[L, R]) All() iter.Seq[L] {
	return func(yield func(L) bool) {
		if !p.source.isSuccess {
			yield(p.source.failure)
		}
	}
}

// ToResult returns the projected Result unchanged.
func (p FailureProjection[L, R]) ToResult() Result[L, R] {
	return p.source
}

func (p FailureProjection[L, R]) IsLazy() bool         { return false }
func (p FailureProjection[L, R]) IsAsync() bool        { return false }
func (p FailureProjection[L, R]) IsSingleValued() bool { return true }

func (p FailureProjection[L, R]) String() string {
	return "FailureProjection(" + p.source.String() + ")"
}

func MapFailureProjection[L, R, U any](p FailureProjection[L, R], f func(L) U) FailureProjection[U, R] {
	return MapFailure(p.source, f).ProjectFailure()
}

// TransformFailureProjection applies f to the projection itself.
func TransformFailureProjection[L, R, U any](p FailureProjection[L, R], f func(FailureProjection[L, R]) U) U {
	return f(p)
}

func FlatMapFailureProjection[L, R, U any](p FailureProjection[L, R],
	f func(L) FailureProjection[U, R]) FailureProjection[U, R] {

	if p.source.isSuccess {
		return Success[U](p.source.success).ProjectFailure()
	}
	return f(p.source.failure)
}

func (p SuccessProjection[L, R]) IsEmpty() bool {
	return !p.source.isSuccess
}

func (p SuccessProjection[L, R]) Get() (R, error) {
	if !p.source.isSuccess {
		var zero R
		return zero, fmt.Errorf("%w: SuccessProjection.Get on Failure", ErrWrongVariant)
	}
	return p.source.success, nil
}

func (p SuccessProjection[L, R]) GetOrElse(other R) R {
	return p.source.GetOrElse(other)
}

func (p SuccessProjection[L, R]) GetOrElseGet(other func(L) R) R {
	return p.source.GetOrElseGet(other)
}

func (p SuccessProjection[L, R]) GetOrError(toErr func(L) error) (R, error) {
	return p.source.GetOrError(toErr)
}

func (p SuccessProjection[L, R]) OrElse(other SuccessProjection[L, R]) SuccessProjection[L, R] {
	if p.source.isSuccess {
		return p
	}
	return other
}

func (p SuccessProjection[L, R]) OrElseGet(supplier func() SuccessProjection[L, R]) SuccessProjection[L, R] {
	if p.source.isSuccess {
		return p
	}
	return supplier()
}

func (p SuccessProjection[L, R]) OrElseRun(action func(L)) {
	p.source.OrElseRun(action)
}

func (p SuccessProjection[L, R]) Filter(pred func(R) bool) (SuccessProjection[L, R], error) {
	if !p.source.isSuccess || pred(p.source.success) {
		return p, nil
	}
	return p, ErrFilterPredicateFailed
}

func (p SuccessProjection[L, R]) Peek(action func(R)) SuccessProjection[L, R] {
	p.source.PeekSuccess(action)
	return p
}

func (p SuccessProjection[L, R]) All() iter.Seq[R] {
	return p.source.All()
}

func (p SuccessProjection[L, R]) ToResult() Result[L, R] {
	return p.source
}

func (p SuccessProjection[L, R]) IsLazy() bool         { return false }
func (p SuccessProjection[L, R]) IsAsync() bool        { return false }
func (p SuccessProjection[L, R]) IsSingleValued() bool { return true }

func (p SuccessProjection[L, R]) String() string {
	return "SuccessProjection(" + p.source.String() + ")"
}

func MapSuccessProjection[L, R, U any](p SuccessProjection[L, R], f func(R) U) SuccessProjection[L, U] {
	return Map(p.source, f).ProjectSuccess()
}

// TransformSuccessProjection applies f to the projection itself.
func TransformSuccessProjection[L, R, U any](p SuccessProjection[L, R], f func(SuccessProjection[L, R]) U) U {
	return f(p)
}

func FlatMapSuccessProjection[L, R, U any](p SuccessProjection[L, R],
	f func(R) SuccessProjection[L, U]) SuccessProjection[L, U] {

	if !p.source.isSuccess {
		return Failure[U](p.source.failure).ProjectSuccess()
	}
	return f(p.source.success)
}
