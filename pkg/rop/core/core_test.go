package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.True(t, IsProcessRemainingEnabled(ctx, true))

	ctx = WithProcessOptions(WithWorkerOptions(ctx, 2), false)
	assert.Equal(t, 2, GetWorkerMaxCount(ctx, 5))
	assert.False(t, IsProcessRemainingEnabled(ctx, true))

	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(context.Background(), 0), 5))
}

func TestToChanIndexed_FromChanMany(t *testing.T) {
	t.Parallel()

	got := FromChanMany(ToChanIndexed(context.Background(), []string{"a", "b"}))
	assert.Equal(t, []Indexed[string]{{0, "a"}, {1, "b"}}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, FromChanMany(ToChanMany(ctx, []int{1, 2, 3})))
}

func TestLocomotive_ProcessesAndKeepsIndex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := make(chan Indexed[rop.Result[error, int]])
	wg := &sync.WaitGroup{}

	var processed []int
	wg.Add(1)
	go Locomotive(ctx, ToChanIndexed(ctx, []int{3, 4}), out,
		func(_ context.Context, v int) rop.Result[error, int] {
			if v == 4 {
				return rop.Failure[int](errors.New("four"))
			}
			return rop.Success[error](v * 10)
		},
		DefaultCancellation[int, int](),
		func(_ context.Context, o Indexed[rop.Result[error, int]]) { processed = append(processed, o.Index) },
		wg)

	go func() {
		wg.Wait()
		close(out)
	}()

	got := FromChanMany(out)
	if assert.Len(t, got, 2) {
		assert.Equal(t, Indexed[rop.Result[error, int]]{0, rop.Success[error](30)}, got[0])
		assert.Equal(t, 1, got[1].Index)
		assert.True(t, got[1].Value.IsFailure())
	}
	wg.Wait()
	assert.Equal(t, []int{0, 1}, processed)
}

func TestCancelUnprocessed(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan Indexed[rop.Result[error, int]], 1)
	CancelUnprocessed[string, int](ctx, Indexed[string]{Index: 4, Value: "x"}, out)
	got := <-out
	assert.Equal(t, 4, got.Index)
	assert.Equal(t, rop.Failure[int](context.Canceled), got.Value)

	CancelUnprocessed[string, int](WithProcessOptions(ctx, false), Indexed[string]{Index: 5}, out)
	assert.Empty(t, out)
}
