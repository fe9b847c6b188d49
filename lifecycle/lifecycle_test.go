package lifecycle

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestStopWaitsForGoroutines(t *testing.T) {
	lc := New(context.Background())
	var finished atomic.Int32
	for i := 0; i < 3; i++ {
		lc.Go(func(ctx context.Context) {
			<-ctx.Done()
			finished.Add(1)
		})
	}
	if lc.ShouldStop() {
		t.Fatal("fresh lifecycle reports stop")
	}
	lc.Stop()
	if finished.Load() != 3 {
		t.Errorf("finished %d goroutines", finished.Load())
	}
	if !lc.ShouldStop() {
		t.Error("stopped lifecycle must report stop")
	}
}

func TestParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	lc := New(parent)
	cancel()
	<-lc.Context().Done()
	lc.Stop()
}
