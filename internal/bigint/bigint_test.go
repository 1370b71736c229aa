package bigint

import (
	"math/big"
	"testing"
)

func TestPowMod(t *testing.T) {
	got := PowMod(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	want := big.NewInt(445) // 4^13 mod 497
	if got.Cmp(want) != 0 {
		t.Errorf("PowMod = %v, want %v", got, want)
	}
}

func TestMulMod(t *testing.T) {
	got := MulMod(big.NewInt(10), big.NewInt(15), big.NewInt(7))
	want := big.NewInt(3) // 150 mod 7
	if got.Cmp(want) != 0 {
		t.Errorf("MulMod = %v, want %v", got, want)
	}
}

func TestGCDAndCoprime(t *testing.T) {
	if GCD(big.NewInt(12), big.NewInt(18)).Cmp(big.NewInt(6)) != 0 {
		t.Error("GCD(12,18) should be 6")
	}
	if !Coprime(big.NewInt(9), big.NewInt(28)) {
		t.Error("9 and 28 should be coprime")
	}
	if Coprime(big.NewInt(14), big.NewInt(91)) {
		t.Error("14 and 91 share a factor of 7, should not be coprime")
	}
}

func TestInRange(t *testing.T) {
	if !InRange(big.NewInt(5), big.NewInt(2), big.NewInt(91)) {
		t.Error("5 should be in [2, 91)")
	}
	if InRange(big.NewInt(91), big.NewInt(2), big.NewInt(91)) {
		t.Error("91 should not be in [2, 91)")
	}
}
