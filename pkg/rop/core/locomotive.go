package core

import (
	"context"
	"sync"

	"github.com/ib-77/gocoinbase/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan Indexed[In], outCh chan<- Indexed[rop.Result[error, Out]])
	OnCancelUnprocessed func(ctx context.Context, unprocessed Indexed[In], outCh chan<- Indexed[rop.Result[error, Out]])
}

// Locomotive pulls inputs from inputCh, runs engine on each and forwards the
// result, keeping the input index. It returns when inputCh is closed or ctx is
// done. outCh must be drained until it is closed.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan Indexed[In], outCh chan<- Indexed[rop.Result[error, Out]],
	engine func(ctx context.Context, input In) rop.Result[error, Out],
	handlers CancellationHandlers[In, Out],
	onProcessed func(ctx context.Context, out Indexed[rop.Result[error, Out]]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			out := Indexed[rop.Result[error, Out]]{Index: in.Index, Value: engine(ctx, in.Value)}
			outCh <- out
			if onProcessed != nil {
				onProcessed(ctx, out)
			}
		}
	}
}

// CancelRemaining drains inputCh, reporting each input through
// CancelUnprocessed.
func CancelRemaining[In, Out any](ctx context.Context, inputCh <-chan Indexed[In],
	outCh chan<- Indexed[rop.Result[error, Out]]) {

	for in := range inputCh {
		CancelUnprocessed(ctx, in, outCh)
	}
}

// CancelUnprocessed reports in as Failure(ctx.Err()) when the ctx-carried
// ProcessRemaining option is on (the default) and drops it otherwise.
func CancelUnprocessed[In, Out any](ctx context.Context, in Indexed[In],
	outCh chan<- Indexed[rop.Result[error, Out]]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- Indexed[rop.Result[error, Out]]{Index: in.Index, Value: rop.Failure[Out](ctx.Err())}
	}
}

// DefaultCancellation wires CancelRemaining and CancelUnprocessed.
func DefaultCancellation[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemaining[In, Out],
		OnCancelUnprocessed: CancelUnprocessed[In, Out],
	}
}
