package bigint

import "testing"

func TestFromBytesLE(t *testing.T) {
	// 0x0201 little-endian == decimal 2 + 1*256 = 258
	b := []byte{0x02, 0x01}
	got := FromBytesLE(b)
	if got.CmpUint64(258) != 0 {
		t.Fatalf("FromBytesLE(%x) = %s, want 258", b, got)
	}
}

func TestFromLimbsRoundTrip(t *testing.T) {
	limbs := []uint64{0xdeadbeef, 0x1}
	i := FromLimbs(limbs)
	got := i.Limbs()
	if len(got) != len(limbs) {
		t.Fatalf("Limbs() length = %d, want %d", len(got), len(limbs))
	}
	for idx := range limbs {
		if got[idx] != limbs[idx] {
			t.Fatalf("Limbs()[%d] = %#x, want %#x", idx, got[idx], limbs[idx])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := FromUint64(10)
	b := FromUint64(3)
	if a.Add(b).CmpUint64(13) != 0 {
		t.Fatalf("Add failed")
	}
	if a.Sub(b).CmpUint64(7) != 0 {
		t.Fatalf("Sub failed")
	}
	if a.Mul(b).CmpUint64(30) != 0 {
		t.Fatalf("Mul failed")
	}
	if a.Mod(b).CmpUint64(1) != 0 {
		t.Fatalf("Mod failed")
	}
}

func TestPowmFermat(t *testing.T) {
	// 2^(7-1) mod 7 == 1 since 7 is prime.
	base := FromUint64(2)
	exp := FromUint64(6)
	mod := FromUint64(7)
	got := Powm(base, exp, mod)
	if got.CmpUint64(1) != 0 {
		t.Fatalf("Powm(2,6,7) = %s, want 1", got)
	}
}

func TestModUint32(t *testing.T) {
	i := FromUint64(1_000_000_007)
	if got := i.ModUint32(97); got != 1_000_000_007%97 {
		t.Fatalf("ModUint32 = %d, want %d", got, 1_000_000_007%97)
	}
}
