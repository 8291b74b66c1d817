package coordinator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

type countingCallbacks struct {
	hits    atomic.Int64
	restart atomic.Bool
}

func (c *countingCallbacks) ReportSuccess(hit sextuplet.Hit) { c.hits.Add(1) }
func (c *countingCallbacks) CheckRestart() bool              { return c.restart.Load() }

// TestRunCancellationBounded reproduces spec.md §8 scenario 4: requesting
// restart shortly after a round starts must make Run return promptly.
func TestRunCancellationBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-scale round in short mode")
	}

	table, err := primetable.Build()
	if err != nil {
		t.Fatalf("primetable.Build: %v", err)
	}
	c := New(table)

	cb := &countingCallbacks{}
	go func() {
		time.Sleep(1 * time.Millisecond)
		cb.restart.Store(true)
	}()

	var hash [32]byte
	done := make(chan struct{})
	go func() {
		_ = c.Run(context.Background(), sextuplet.HashFromBytes(hash), cb)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return within the bounded time after cancellation")
	}
}
