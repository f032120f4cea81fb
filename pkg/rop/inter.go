package rop

import "iter"

// Value is the capability set shared by single-value containers: Option,
// Result (over its success side) and both projections.
type Value[T any] interface {
	// IsEmpty reports whether there is no value to read
	IsEmpty() bool
	// Get returns the value, or an error when empty
	Get() (T, error)
	// GetOrElse returns the value, or other when empty
	GetOrElse(other T) T
	// All yields the value at most once
	All() iter.Seq[T]
	// IsLazy reports whether the value is computed on first access
	IsLazy() bool
	// IsAsync reports whether the value is computed concurrently
	IsAsync() bool
	// IsSingleValued reports whether the container holds at most one value
	IsSingleValued() bool
}

var (
	_ Value[int] = Option[int]{}
	_ Value[int] = Result[string, int]{}
	_ Value[string] = FailureProjection[string, int]{}
	_ Value[int] = SuccessProjection[string, int]{}
)

func Contains[T comparable](v Value[T], element T) bool {
	return Exists(v, func(e T) bool { return e == element })
}

func Exists[T any](v Value[T], pred func(T) bool) bool {
	for e := range v.All() {
		if pred(e) {
			return true
		}
	}
	return false
}

// ForAll is true for an empty value.
func ForAll[T any](v Value[T], pred func(T) bool) bool {
	return !Exists(v, func(e T) bool { return !pred(e) })
}

func ToOption[T any](v Value[T]) Option[T] {
	if o, ok := v.(Option[T]); ok {
		return o
	}
	if x, err := v.Get(); err == nil {
		return Some(x)
	}
	return None[T]()
}

// ToResult puts the value on the success side, or left on the failure side
// when v is empty. A Result keeps its success payload and has its failure
// payload replaced by left.
func ToResult[L, T any](v Value[T], left L) Result[L, T] {
	return ToResultGet(v, func() L { return left })
}

// ToResultGet is ToResult with a lazily built failure payload.
func ToResultGet[L, T any](v Value[T], left func() L) Result[L, T] {
	if x, err := v.Get(); err == nil {
		return Success[L](x)
	}
	return Failure[T](left())
}
