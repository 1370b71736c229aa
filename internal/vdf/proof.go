package vdf

import (
	"math/big"

	"vdfproof/internal/bigint"
)

// constructProof builds π = g^⌊2^T/ℓ⌋ mod N incrementally: rather than
// forming the (potentially gigabit-sized) integer 2^T directly, it
// walks T bits of the quotient one at a time, tracking the running
// remainder r = 2^i mod ℓ. This avoids ever materializing 2^T as a
// literal integer, which would not scale to large T.
func constructProof(n, g, l *big.Int, t uint64) *big.Int {
	pi := big.NewInt(1)
	r := big.NewInt(1)
	two := big.NewInt(2)

	for i := uint64(0); i < t; i++ {
		// b = floor(2r / l); r = (2r) mod l
		twoR := new(big.Int).Mul(two, r)
		b := new(big.Int).Div(twoR, l)
		r = new(big.Int).Mod(twoR, l)

		// pi = (pi^2 mod N) * (g^b mod N) mod N
		piSquared := bigint.PowMod(pi, two, n)
		gToB := bigint.PowMod(g, b, n)
		pi = bigint.MulMod(piSquared, gToB, n)
	}

	return pi
}

// powerOfTwoModL computes 2^t mod l. l is always a small (~128 bit)
// safe prime regardless of how large t is, so this is cheap even for
// t in the billions. This is the remainder term the verifier needs in
// the equation y = pi^l * g^r mod N; see DESIGN.md for the reasoning
// behind this formula.
func powerOfTwoModL(t uint64, l *big.Int) *big.Int {
	tBig := new(big.Int).SetUint64(t)
	return bigint.PowMod(big.NewInt(2), tBig, l)
}
