package sextuplet

import "github.com/rawblock/riecoin-sextuplet-engine/internal/bigint"

// Candidate is the immutable description of one search job: the base
// integer B derived from the pool-supplied hash, the fixed primorial Q,
// and the offset x that primorial-aligns B + x (spec.md §3).
type Candidate struct {
	Hash Hash
	B    *bigint.Int
	Q    *bigint.Int

	// x is the unique value in [0, Q) making B + x primorial-aligned.
	// xC is B + x + AlignConst, the quantity every per-prime residue and
	// every Fermat-test candidate is ultimately built from.
	x  *bigint.Int
	xC *bigint.Int
}

// NewCandidate builds the Candidate for one round given the pool-supplied
// target hash, per spec.md §3:
//
//	B = 2^(z+264) + h*2^z
//	x = (Q - (B mod Q)) mod Q
//	xC = B + x + AlignConst
func NewCandidate(hash Hash) *Candidate {
	q := Primorial()
	h := hashToInt(hash)

	one := bigint.FromUint64(1)
	base := one.Lsh(TrailingBits + 264).Add(h.Lsh(TrailingBits))

	x := q.Sub(base.Mod(q)).Mod(q)
	xC := base.Add(x).AddUint64(AlignConst)

	return &Candidate{
		Hash: hash,
		B:    base,
		Q:    q,
		x:    x,
		xC:   xC,
	}
}

// X returns the primorial-aligning offset x.
func (c *Candidate) X() *bigint.Int { return c.x }

// XC returns B + x + AlignConst, the base every sieve residue and Fermat
// candidate is computed from.
func (c *Candidate) XC() *bigint.Int { return c.xC }

// At reconstructs the full-precision integer xC + k*Q + offset for a given
// sieve position k and constellation offset, i.e. B + x + k*Q + C + o.
func (c *Candidate) At(k uint64, offset uint64) *bigint.Int {
	return c.xC.Add(c.Q.MulUint64(k)).AddUint64(offset)
}
