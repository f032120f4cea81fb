package rop

import (
	"fmt"
	"iter"
)

// Option holds zero or one value.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf is None for a nil pointer and Some of the pointee otherwise.
func OptionOf[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) IsEmpty() bool {
	return !o.present
}

func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoSuchElement
	}
	return o.value, nil
}

func (o Option[T]) GetOrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

func (o Option[T]) Peek(action func(T)) Option[T] {
	if o.present {
		action(o.value)
	}
	return o
}

func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

func (o Option[T]) IsLazy() bool         { return false }
func (o Option[T]) IsAsync() bool        { return false }
func (o Option[T]) IsSingleValued() bool { return true }

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}
