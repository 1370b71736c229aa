// Package bigint is a thin facade over math/big restricted to the
// operations the VDF core actually needs: modular exponentiation, gcd,
// multiplication and reduction. Keeping the surface narrow means the
// core never reaches for a bigint operation whose semantics it hasn't
// reasoned about.
package bigint

import "math/big"

// PowMod returns base^exp mod m.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// MulMod returns (a*b) mod m.
func MulMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// Mod returns a mod m.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(big.NewInt(1)) == 0
}

// InRange reports whether lo <= v < hi.
func InRange(v, lo, hi *big.Int) bool {
	return v.Cmp(lo) >= 0 && v.Cmp(hi) < 0
}
