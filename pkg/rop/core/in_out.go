package core

import (
	"context"
)

// Indexed tags a value with its position in the original input so results
// produced out of order can be put back in input order.
type Indexed[T any] struct {
	Index int
	Value T
}

// ToChanFromArgs emits values until they run out or ctx is done, then closes
// the channel.
func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// ToChanIndexed is ToChanMany with every value tagged by its position.
func ToChanIndexed[T any](ctx context.Context, values []T) <-chan Indexed[T] {
	indexed := make([]Indexed[T], len(values))
	for i, v := range values {
		indexed[i] = Indexed[T]{Index: i, Value: v}
	}
	return ToChanFromArgs(ctx, indexed...)
}

// FromChanMany drains out until it is closed.
func FromChanMany[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
