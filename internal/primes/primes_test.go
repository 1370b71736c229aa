package primes

import (
	"math/big"
	"testing"
)

func TestGenerateSafePrimeIsSafe(t *testing.T) {
	l, err := GenerateSafePrime(64)
	if err != nil {
		t.Fatalf("GenerateSafePrime failed: %v", err)
	}
	if !IsSafePrime(l) {
		t.Errorf("generated value %v is not a safe prime", l)
	}
	if l.BitLen() != 64 {
		t.Errorf("expected 64-bit prime, got %d bits", l.BitLen())
	}
}

func TestIsSafePrimeKnownValues(t *testing.T) {
	cases := []struct {
		n        int64
		wantSafe bool
	}{
		{5, true},   // (5-1)/2 = 2, prime
		{7, true},   // (7-1)/2 = 3, prime
		{11, true},  // (11-1)/2 = 5, prime
		{13, false}, // (13-1)/2 = 6, not prime
		{9, false},  // not prime at all
		{1, false},
		{2, false},
	}

	for _, c := range cases {
		got := IsSafePrime(big.NewInt(c.n))
		if got != c.wantSafe {
			t.Errorf("IsSafePrime(%d) = %v, want %v", c.n, got, c.wantSafe)
		}
	}
}

func TestIsSafePrimeRejectsNilAndNegative(t *testing.T) {
	if IsSafePrime(nil) {
		t.Error("nil should not be a safe prime")
	}
	if IsSafePrime(big.NewInt(-11)) {
		t.Error("negative values should not be safe primes")
	}
}
