package rop

import "errors"

var (
	// ErrWrongVariant is returned when reading the side a Result does not hold.
	ErrWrongVariant = errors.New("wrong result variant")
	// ErrFilterPredicateFailed is returned by Filter when the predicate rejects
	// a success payload.
	ErrFilterPredicateFailed = errors.New("filter predicate failed")
	// ErrNoSuchElement is returned by Option.Get on None.
	ErrNoSuchElement = errors.New("no such element")
)
