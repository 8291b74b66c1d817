package sieve

// mulmod returns a*b mod p for a, b, p < 2^32.
func mulmod(a, b, p uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) % uint64(p))
}

// submod returns (a-b) mod p, handling the wraparound when b > a.
func submod(a, b, p uint32) uint32 {
	if a < b {
		return a + p - b
	}
	return a - b
}

// sixResidues computes the six k values such that
// xC + k*Q + offset ≡ 0 (mod p) for offset in sextuplet.Offsets, given
// r = xC mod p and qinv = Q^-1 mod p (spec.md §4.2 Step 2). The same
// recurrence serves both the low-prime offset table initialisation and the
// high-prime direct-hit computation.
func sixResidues(p, qinv, r uint32) [6]uint32 {
	qinv2 := mulmod(2, qinv, p)
	qinv4 := mulmod(2, qinv2, p)

	var off [6]uint32
	off[0] = submod(0, mulmod(r, qinv, p), p)
	off[1] = submod(off[0], qinv4, p)
	off[2] = submod(off[1], qinv2, p)
	off[3] = submod(off[2], qinv4, p)
	off[4] = submod(off[3], qinv2, p)
	off[5] = submod(off[4], qinv4, p)
	return off
}
