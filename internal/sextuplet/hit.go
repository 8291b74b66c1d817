package sextuplet

import "github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"

// HitOrigin distinguishes which tester path produced a Hit. spec.md §9
// notes the reference miner folds this into an upper bit of the prime
// count; this reimplementation keeps it as its own field instead, exactly
// as that design note recommends.
type HitOrigin uint8

const (
	// OriginCPU marks a hit produced by the in-process Fermat-test
	// worker pool (internal/tester.Worker).
	OriginCPU HitOrigin = iota
	// OriginAccelerator marks a hit produced by an offloaded tester
	// back-end, per spec.md §9's
	// pluggable-backend design note. No accelerator back-end ships in
	// this module; the value exists so one can be added without
	// changing the Hit shape.
	OriginAccelerator
)

func (o HitOrigin) String() string {
	switch o {
	case OriginCPU:
		return "cpu"
	case OriginAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// Hit is a candidate that passed at least one Fermat test under the
// mandatory short-circuit schedule (spec.md §4.3).
type Hit struct {
	// Candidate is cand = B + x + k*Q + C (not cand+o): the caller owns
	// this copy and may mutate or free it immediately.
	Candidate *bigint.Int
	// Count is the number of offsets, out of six, that passed their
	// Fermat test under the mandated schedule. Always in [1,6].
	Count int
	Origin HitOrigin
}
