package chain

import (
	"context"

	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

// Chain wraps an error-railway result with the context every step receives.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[error, T]
}

func Start[T any](ctx context.Context, result rop.Result[error, T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// FromCall starts a chain from a Go-style (value, error) call.
func FromCall[T any](ctx context.Context, value T, err error) *Chain[T] {
	return Start(ctx, solo.Of(value, err))
}

func (c *Chain[T]) Result() rop.Result[error, T] {
	return c.result
}

// Unpack returns the chain's outcome as a (value, error) pair.
func (c *Chain[T]) Unpack() (T, error) {
	return solo.Unpack(c.result)
}

// Then chains a function that returns a new result.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[error, U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Validate fails the chain with errMsg when validate rejects the value.
func (c *Chain[T]) Validate(validate func(context.Context, T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// OnFailure runs onError for a failed chain; cancellations go to onCancel.
func (c *Chain[T]) OnFailure(onError func(context.Context, error), onCancel func(context.Context, error)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.DoubleTee(c.ctx, c.result, nil, onError, onCancel),
	}
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
