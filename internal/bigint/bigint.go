// Package bigint is the minimal multi-precision integer interface the
// sextuplet search core exchanges candidates through (construction from a
// limb array, modular exponentiation, comparison with small constants).
// It wraps math/big.Int rather than hand-rolling limb arithmetic: the
// corpus's own big-number code (btcec/secp256k1 field elements) is fixed
// to a single 256-bit prime and cannot represent an arbitrary odd modulus
// that grows with the sieve window, so the standard library is the only
// suitable fit here.
package bigint

import "math/big"

// MaxLimbs bounds the limb-array interchange form per spec: candidates fit
// in at most 32 limbs of 64 bits (2048 bits), comfortably covering the
// ~520-bit values this engine actually produces.
const MaxLimbs = 32

// Int is an arbitrary-precision unsigned integer.
type Int struct {
	v big.Int
}

// New returns the zero value.
func New() *Int {
	return &Int{}
}

// FromUint64 builds an Int from a single 64-bit limb.
func FromUint64(x uint64) *Int {
	i := &Int{}
	i.v.SetUint64(x)
	return i
}

// FromLimbs builds an Int from little-endian 64-bit limbs (limbs[0] is the
// least-significant word), the interchange form callers of report_success
// use to hand candidates across the module boundary.
func FromLimbs(limbs []uint64) *Int {
	i := &Int{}
	if len(limbs) == 0 {
		return i
	}
	words := make([]big.Word, len(limbs))
	for idx, l := range limbs {
		words[idx] = big.Word(l)
	}
	i.v.SetBits(words)
	return i
}

// FromBytesLE interprets b as an unsigned integer in little-endian byte
// order, the wire form of the 256-bit target hash (spec.md §6).
func FromBytesLE(b []byte) *Int {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	i := &Int{}
	i.v.SetBytes(rev)
	return i
}

// Limbs returns the value as little-endian 64-bit limbs. No padding or
// truncation is performed: the slice is exactly as long as the value
// needs (empty for zero).
func (i *Int) Limbs() []uint64 {
	words := i.v.Bits()
	limbs := make([]uint64, len(words))
	for idx, w := range words {
		limbs[idx] = uint64(w)
	}
	return limbs
}

// Clone returns an independent copy; callers of report_success own their
// copy and may mutate or free it immediately after the call returns.
func (i *Int) Clone() *Int {
	c := &Int{}
	c.v.Set(&i.v)
	return c
}

// Add returns i + other as a new Int.
func (i *Int) Add(other *Int) *Int {
	r := &Int{}
	r.v.Add(&i.v, &other.v)
	return r
}

// AddUint64 returns i + x as a new Int.
func (i *Int) AddUint64(x uint64) *Int {
	r := &Int{}
	r.v.Add(&i.v, new(big.Int).SetUint64(x))
	return r
}

// Sub returns i - other as a new Int.
func (i *Int) Sub(other *Int) *Int {
	r := &Int{}
	r.v.Sub(&i.v, &other.v)
	return r
}

// Mul returns i * other as a new Int.
func (i *Int) Mul(other *Int) *Int {
	r := &Int{}
	r.v.Mul(&i.v, &other.v)
	return r
}

// MulUint64 returns i * x as a new Int.
func (i *Int) MulUint64(x uint64) *Int {
	r := &Int{}
	r.v.Mul(&i.v, new(big.Int).SetUint64(x))
	return r
}

// Lsh returns i << n as a new Int.
func (i *Int) Lsh(n uint) *Int {
	r := &Int{}
	r.v.Lsh(&i.v, n)
	return r
}

// Mod returns i mod m as a new Int (Euclidean, always non-negative for
// positive m, matching the "mod" used throughout spec.md).
func (i *Int) Mod(m *Int) *Int {
	r := &Int{}
	r.v.Mod(&i.v, &m.v)
	return r
}

// ModUint32 returns i mod m for a small modulus, the hot path used while
// initialising per-prime sieve offsets.
func (i *Int) ModUint32(m uint32) uint32 {
	var mm big.Int
	mm.SetUint64(uint64(m))
	var rr big.Int
	rr.Mod(&i.v, &mm)
	return uint32(rr.Uint64())
}

// Powm computes base^exp mod m, the Fermat-test primitive (2^(n-1) mod n).
func Powm(base, exp, m *Int) *Int {
	r := &Int{}
	r.v.Exp(&base.v, &exp.v, &m.v)
	return r
}

// CmpUint64 compares i to a small constant: -1, 0, or +1.
func (i *Int) CmpUint64(x uint64) int {
	var xx big.Int
	xx.SetUint64(x)
	return i.v.Cmp(&xx)
}

// Cmp compares i to other: -1, 0, or +1.
func (i *Int) Cmp(other *Int) int {
	return i.v.Cmp(&other.v)
}

// String renders the decimal form, used only for logging/tests.
func (i *Int) String() string {
	return i.v.String()
}

// BitLen returns the number of bits required to represent i.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}
