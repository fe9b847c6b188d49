package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle ties background goroutines to one cancellation and waits for them on Stop.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(parent context.Context) *Lifecycle {
	ctx, cancel := context.WithCancel(parent)
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Context() context.Context {
	return lc.ctx
}

// Go runs fn on its own goroutine; Stop waits for it to return.
func (lc *Lifecycle) Go(fn func(ctx context.Context)) {
	lc.Started()
	go func() {
		defer lc.Done()
		fn(lc.ctx)
	}()
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

// Cancel signals every goroutine to stop without waiting.
func (lc *Lifecycle) Cancel() {
	lc.cancel()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
