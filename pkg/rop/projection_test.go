package rop

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureProjection_OnFailure(t *testing.T) {
	t.Parallel()

	r := Failure[int]("boom")
	p := r.ProjectFailure()

	assert.False(t, p.IsEmpty())
	v, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "boom", v)
	assert.Equal(t, "boom", p.GetOrElse("other"))
	assert.Equal(t, "boom", p.GetOrElseGet(func(int) string { return "other" }))
	assert.Equal(t, []string{"boom"}, slices.Collect(p.All()))
	assert.Equal(t, r, p.ToResult())

	upper := MapFailureProjection(p, strings.ToUpper)
	assert.Equal(t, Failure[int]("BOOM"), upper.ToResult())

	toLen := FlatMapFailureProjection(p, func(s string) FailureProjection[int, int] {
		return Failure[int](len(s)).ProjectFailure()
	})
	assert.Equal(t, Failure[int](4), toLen.ToResult())
}

func TestFailureProjection_OnSuccess(t *testing.T) {
	t.Parallel()

	r := Success[string](7)
	p := r.ProjectFailure()

	assert.True(t, p.IsEmpty())
	_, err := p.Get()
	assert.ErrorIs(t, err, ErrWrongVariant)
	assert.Equal(t, "other", p.GetOrElse("other"))
	assert.Equal(t, "7!", p.GetOrElseGet(func(v int) string { return "7!" }))
	assert.Empty(t, slices.Collect(p.All()))

	errSeven := errors.New("seven")
	_, err = p.GetOrError(func(int) error { return errSeven })
	assert.ErrorIs(t, err, errSeven)

	mapped := MapFailureProjection(p, strings.ToUpper)
	assert.Equal(t, r, mapped.ToResult(), "mapping the failure side leaves a success untouched")

	called := false
	flat := FlatMapFailureProjection(p, func(s string) FailureProjection[int, int] {
		called = true
		return Failure[int](0).ProjectFailure()
	})
	assert.False(t, called)
	assert.Equal(t, Success[int](7), flat.ToResult())
}

func TestFailureProjection_FilterPeekOrElse(t *testing.T) {
	t.Parallel()

	p := Failure[int]("boom").ProjectFailure()

	_, err := p.Filter(func(s string) bool { return s == "boom" })
	require.NoError(t, err)
	_, err = p.Filter(func(s string) bool { return s == "other" })
	assert.ErrorIs(t, err, ErrFilterPredicateFailed)
	_, err = Success[string](1).ProjectFailure().Filter(func(string) bool { return false })
	require.NoError(t, err)

	peeked := 0
	p.Peek(func(string) { peeked++ })
	Success[string](1).ProjectFailure().Peek(func(string) { peeked++ })
	assert.Equal(t, 1, peeked)

	other := Failure[int]("other").ProjectFailure()
	assert.Equal(t, p, p.OrElse(other))
	assert.Equal(t, other, Success[string](1).ProjectFailure().OrElse(other))

	calls := 0
	p.OrElseGet(func() FailureProjection[string, int] { calls++; return other })
	assert.Equal(t, 0, calls)

	ran := 0
	p.OrElseRun(func(int) { ran++ })
	Success[string](1).ProjectFailure().OrElseRun(func(int) { ran++ })
	assert.Equal(t, 1, ran)
}

func TestSuccessProjection(t *testing.T) {
	t.Parallel()

	s := Success[string](3).ProjectSuccess()
	f := Failure[int]("e").ProjectSuccess()

	assert.False(t, s.IsEmpty())
	assert.True(t, f.IsEmpty())

	v, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	_, err = f.Get()
	assert.ErrorIs(t, err, ErrWrongVariant)

	assert.Equal(t, 0, f.GetOrElse(0))
	assert.Equal(t, 1, f.GetOrElseGet(func(l string) int { return len(l) }))
	assert.Equal(t, []int{3}, slices.Collect(s.All()))

	doubled := MapSuccessProjection(s, func(v int) int { return v * 2 })
	assert.Equal(t, Success[string](6), doubled.ToResult())
	assert.Equal(t, Failure[int]("e"), MapSuccessProjection(f, func(v int) int { return v * 2 }).ToResult())

	flat := FlatMapSuccessProjection(s, func(v int) SuccessProjection[string, string] {
		return Failure[string]("rejected").ProjectSuccess()
	})
	assert.Equal(t, Failure[string]("rejected"), flat.ToResult())

	_, err = s.Filter(func(v int) bool { return v > 5 })
	assert.ErrorIs(t, err, ErrFilterPredicateFailed)

	assert.Equal(t, s, f.OrElse(s))
	assert.Equal(t, s, s.OrElseGet(func() SuccessProjection[string, int] {
		t.Fatalf("supplier must not run on success")
		return f
	}))
}

func TestProjection_Transform(t *testing.T) {
	t.Parallel()

	describeFailure := func(p FailureProjection[string, int]) string {
		return p.GetOrElse("none") + "/" + fmt.Sprint(p.IsEmpty())
	}
	assert.Equal(t, "boom/false", TransformFailureProjection(Failure[int]("boom").ProjectFailure(), describeFailure))
	assert.Equal(t, "none/true", TransformFailureProjection(Success[string](1).ProjectFailure(), describeFailure))

	answer := TransformSuccessProjection(Success[string](42).ProjectSuccess(), func(p SuccessProjection[string, int]) string {
		return "Answer is " + fmt.Sprint(p.GetOrElse(0))
	})
	assert.Equal(t, "Answer is 42", answer)

	empty := TransformSuccessProjection(Failure[int]("e").ProjectSuccess(), func(p SuccessProjection[string, int]) bool {
		return p.IsEmpty()
	})
	assert.True(t, empty)
}

func TestProjection_ToResultIsIdentity(t *testing.T) {
	t.Parallel()

	for _, r := range []Result[string, int]{Success[string](1), Failure[int]("e")} {
		assert.Equal(t, r, r.ProjectFailure().ToResult())
		assert.Equal(t, r, r.ProjectSuccess().ToResult())
	}
}
