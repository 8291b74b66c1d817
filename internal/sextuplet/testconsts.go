package sextuplet

import "github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"

// NewToyCandidateForTest builds a Candidate around a tiny, caller-chosen
// base instead of the consensus primorial construction. It is a test
// helper, exported only because Go test files cannot be shared across
// package boundaries: it backs the golden-vector test for the known
// sextuplet (7, 11, 13, 17, 19, 23) in internal/tester. Q is fixed to 1 so
// Candidate.At(0, o) reduces to base+o, letting that test assert the
// short-circuit schedule against small, hand-checkable integers instead of
// the full ~520-bit production search space. Not used outside tests.
func NewToyCandidateForTest(base uint64) *Candidate {
	return &Candidate{
		Q:  bigint.FromUint64(1),
		x:  bigint.FromUint64(0),
		xC: bigint.FromUint64(base),
	}
}
