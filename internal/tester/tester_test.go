package tester

import (
	"testing"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/sextuplet"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/sieve"
)

// fakeCallbacks records ReportSuccess calls and never requests a restart.
type fakeCallbacks struct {
	hits []sextuplet.Hit
}

func (f *fakeCallbacks) ReportSuccess(hit sextuplet.Hit) {
	f.hits = append(f.hits, hit)
}

func (f *fakeCallbacks) CheckRestart() bool { return false }

// TestWorkerKnownSextuplet reproduces spec.md §8 scenario 3: a base chosen
// so the six shifted values are the known prime sextuplet
// (7, 11, 13, 17, 19, 23) must yield a hit with count == 6.
func TestWorkerKnownSextuplet(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(7)
	state := sieve.NewState() // all-zero: nothing sieved, k=0 survives

	cb := &fakeCallbacks{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 1)

	if len(cb.hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(cb.hits))
	}
	if cb.hits[0].Count != 6 {
		t.Fatalf("count = %d, want 6", cb.hits[0].Count)
	}
	if cb.hits[0].Candidate.CmpUint64(7) != 0 {
		t.Fatalf("reported candidate = %s, want 7", cb.hits[0].Candidate.String())
	}
}

// TestWorkerShortCircuitOnFirstFailure checks that a base whose first
// offset (o=0) is composite produces no hit at all.
func TestWorkerShortCircuitOnFirstFailure(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(9) // 9 is composite
	state := sieve.NewState()

	cb := &fakeCallbacks{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 1)

	if len(cb.hits) != 0 {
		t.Fatalf("got %d hits, want 0", len(cb.hits))
	}
}

// TestWorkerPartialConstellation checks a base where o=0 passes and exactly
// two of {4,6,10} do: count reaches the threshold of 2, so 12/16 are still
// tested and the hit is reported with the resulting count.
//
// base=53: 53 prime, 57=3*19 composite, 59 prime, 63=9*7 composite ->
// count=2 after {0,4,6,10}. 65=5*13 composite, 69=3*23 composite -> count
// stays 2.
func TestWorkerPartialConstellation(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(53)
	state := sieve.NewState()

	cb := &fakeCallbacks{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 1)

	if len(cb.hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(cb.hits))
	}
	if cb.hits[0].Count != 2 {
		t.Fatalf("count = %d, want 2", cb.hits[0].Count)
	}
}

// TestWorkerNoHitBelowThreshold checks that a base passing o=0 but fewer
// than two of {4,6,10} produces no hit at all (spec.md §4.3: "if primes < 2,
// skip k" - not "report with count 1").
//
// base=89: 89 prime, 93=3*31 composite, 95=5*19 composite, 99=9*11
// composite -> count=1 after {0,4,6,10}, below the threshold.
func TestWorkerNoHitBelowThreshold(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(89)
	state := sieve.NewState()

	cb := &fakeCallbacks{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 1)

	if len(cb.hits) != 0 {
		t.Fatalf("got %d hits, want 0", len(cb.hits))
	}
}

// TestWorkerSkipsSievedPositions checks that positions already marked
// composite by the sieve are never Fermat-tested.
func TestWorkerSkipsSievedPositions(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(7)
	state := sieve.NewState()
	state.MarkLowForTest(0)

	cb := &fakeCallbacks{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 1)

	if len(cb.hits) != 0 {
		t.Fatalf("got %d hits for a sieved-out position, want 0", len(cb.hits))
	}
}

// TestWorkerRespectsCheckRestart checks that a restart request stops the
// section scan without reporting further hits.
func TestWorkerRespectsCheckRestart(t *testing.T) {
	cand := sextuplet.NewToyCandidateForTest(7)
	state := sieve.NewState()

	cb := &restartAfterFirstPoll{}
	w := NewWorker(cand, cb)
	w.Run(state, 0, 10000)

	if len(cb.hits) != 0 {
		t.Fatalf("got %d hits, want 0 since restart fires before any k is scanned", len(cb.hits))
	}
}

type restartAfterFirstPoll struct {
	hits []sextuplet.Hit
}

func (r *restartAfterFirstPoll) ReportSuccess(hit sextuplet.Hit) {
	r.hits = append(r.hits, hit)
}

func (r *restartAfterFirstPoll) CheckRestart() bool { return true }
