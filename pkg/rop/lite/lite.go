package lite

import (
	"context"
	"sync"

	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/core"
)

// DefaultLines is the worker count used when neither the caller nor the ctx
// sets one.
const DefaultLines = 4

// Turnout runs engine over inputCh on the given number of lines. The returned
// channel is closed once every line has stopped.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan core.Indexed[In],
	engine func(ctx context.Context, input In) rop.Result[error, Out],
	lines int) <-chan core.Indexed[rop.Result[error, Out]] {

	out := make(chan core.Indexed[rop.Result[error, Out]])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.DefaultCancellation[In, Out](), nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run applies engine to every value with at most lines calls in flight and
// returns the results in input order. lines < 1 falls back to the ctx worker
// option, then DefaultLines. Inputs not processed because ctx was cancelled
// become Failure(ctx.Err()), or are left out when the ctx ProcessRemaining
// option is off.
func Run[In, Out any](ctx context.Context, values []In,
	engine func(ctx context.Context, input In) rop.Result[error, Out],
	lines int) []rop.Result[error, Out] {

	if len(values) == 0 {
		return []rop.Result[error, Out]{}
	}
	if lines < 1 {
		lines = core.GetWorkerMaxCount(ctx, DefaultLines)
	}

	processed := core.FromChanMany(
		Turnout(ctx, core.ToChanIndexed(ctx, values), engine, min(lines, len(values))))

	slots := make([]*rop.Result[error, Out], len(values))
	for _, p := range processed {
		slots[p.Index] = &p.Value
	}

	keepRemaining := core.IsProcessRemainingEnabled(ctx, true)
	results := make([]rop.Result[error, Out], 0, len(values))
	for _, slot := range slots {
		switch {
		case slot != nil:
			results = append(results, *slot)
		case keepRemaining:
			results = append(results, rop.Failure[Out](ctx.Err()))
		}
	}
	return results
}

// Traverse is Run followed by rop.SequenceSlice: the first failure in input
// order wins.
func Traverse[In, Out any](ctx context.Context, values []In,
	engine func(ctx context.Context, input In) rop.Result[error, Out],
	lines int) rop.Result[error, []Out] {

	return rop.SequenceSlice(Run(ctx, values, engine, lines))
}
