package sieve

import (
	"context"
	"testing"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
)

// TestSixResiduesMatchesBruteForce checks sixResidues against the defining
// relation k = -(r+offset)*qinv mod p, computed independently for each of
// the six constellation offsets.
func TestSixResiduesMatchesBruteForce(t *testing.T) {
	cases := []struct{ p, qinv, r uint32 }{
		{11, 4, 7},
		{97, 31, 50},
		{9973, 1234, 8888},
	}
	for _, c := range cases {
		off := sixResidues(c.p, c.qinv, c.r)
		for i, k := range off {
			sum := (uint64(c.r) + uint64(sextuplet.Offsets[i])) % uint64(c.p)
			want := (uint64(c.p) - (sum*uint64(c.qinv))%uint64(c.p)) % uint64(c.p)
			if uint64(k) != want {
				t.Errorf("p=%d qinv=%d r=%d offset[%d]=%d: got k=%d, want %d",
					c.p, c.qinv, c.r, i, sextuplet.Offsets[i], k, want)
			}
		}
	}
}

func TestSieveEngineFullScale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-scale sieve in short mode")
	}

	table, err := primetable.Build()
	if err != nil {
		t.Fatalf("primetable.Build: %v", err)
	}

	var hashBytes [32]byte
	hashBytes[0] = 0x01
	cand := sextuplet.NewCandidate(sextuplet.HashFromBytes(hashBytes))

	state := NewState()
	eng := NewEngine()
	if err := eng.Sieve(context.Background(), table, cand, state); err != nil {
		t.Fatalf("Sieve: %v", err)
	}

	var clearedCount uint64
	for k := uint64(0); k < sextuplet.SieveWindow; k++ {
		if state.Clear(k) {
			clearedCount++
		}
	}

	if clearedCount == 0 {
		t.Fatalf("expected some sieve positions to survive, got 0")
	}
	if clearedCount == sextuplet.SieveWindow {
		t.Fatalf("expected sieving to strike at least some composite positions")
	}
	t.Logf("%d of %d positions survived sieving", clearedCount, uint64(sextuplet.SieveWindow))
}

func TestSieveEngineCancellation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-scale sieve in short mode")
	}

	table, err := primetable.Build()
	if err != nil {
		t.Fatalf("primetable.Build: %v", err)
	}

	var hashBytes [32]byte
	cand := sextuplet.NewCandidate(sextuplet.HashFromBytes(hashBytes))
	state := NewState()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := NewEngine()
	if err := eng.Sieve(ctx, table, cand, state); err == nil {
		t.Fatalf("expected Sieve to report cancellation, got nil error")
	}
}
