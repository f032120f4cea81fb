package solo

import (
	"context"
	"errors"

	"github.com/ib-77/gocoinbase/pkg/rop"
)

func Succeed[T any](input T) rop.Result[error, T] {
	return rop.Success[error](input)
}

func Fail[T any](err error) rop.Result[error, T] {
	return rop.Failure[T](err)
}

// Of lifts a Go (value, error) pair onto the railway.
func Of[T any](value T, err error) rop.Result[error, T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(value)
}

// Unpack is the inverse of Of.
func Unpack[T any](input rop.Result[error, T]) (T, error) {
	return input.GetOrError(func(err error) error { return err })
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[error, T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[error, T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[error, T] {

	return rop.FlatMap(input, func(in T) rop.Result[error, T] {
		if valid, errMsg := validate(ctx, in); !valid {
			return Fail[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every validator against input. With breakOnError the first
// failure is returned; otherwise all failures are joined.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[error, T],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in rop.Result[error, T]) rop.Result[error, T]) rop.Result[error, T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[error, T]) rop.Result[error, T] {

			current.OrElseRun(func(e error) {
				errs := rop.GetErrors(err)
				errs = append(errs, e)
				err = errors.Join(errs...)
			})

			if rop.IsNil(err) {
				return current
			}

			return Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[error, In],
	onSuccess func(ctx context.Context, r In) rop.Result[error, Out]) rop.Result[error, Out] {

	return rop.FlatMap(input, func(r In) rop.Result[error, Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[error, In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[error, Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[error, T],
	onSuccess func(ctx context.Context, r T)) rop.Result[error, T] {

	return input.PeekSuccess(func(r T) { onSuccess(ctx, r) })
}

func DoubleTee[T any](ctx context.Context, input rop.Result[error, T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[error, T] {

	return input.Peek(
		func(err error) {
			if rop.IsCancellationError(err) && onCancel != nil {
				onCancel(ctx, err)
			} else if onError != nil {
				onError(ctx, err)
			}
		},
		func(r T) {
			if onSuccess != nil {
				onSuccess(ctx, r)
			}
		})
}

// Try calls a Go-style function on the success value and turns a returned
// error into a failure.
func Try[In any, Out any](ctx context.Context, input rop.Result[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[error, Out] {

	return rop.FlatMap(input, func(r In) rop.Result[error, Out] {
		return Of(onTryExecute(ctx, r))
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[error, T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[error, T] {

	return rop.FlatMap(input, func(in T) rop.Result[error, T] {
		if err := maybeErr(ctx, in); err != nil {
			return Fail[T](err)
		}
		return input
	})
}

// Finally reduces input to Out; cancellation errors go to onCancel.
func Finally[In, Out any](ctx context.Context, input rop.Result[error, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return rop.Fold(input,
		func(err error) Out {
			if rop.IsCancellationError(err) {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		},
		func(r In) Out {
			return onSuccess(ctx, r)
		})
}

func Join[T any](ctx context.Context,
	input rop.Result[error, T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[error, T]) rop.Result[error, T],
	inputsF ...func(ctx context.Context, in rop.Result[error, T]) rop.Result[error, T]) rop.Result[error, T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
