package vdf

import (
	"math/big"

	"vdfproof/internal/bigint"
)

// Validate checks the separate, comparatively expensive coprimality predicate:
// gcd(N,g) = 1 and gcd(N,ℓ) = 1. Split from Verify so a verifier
// amortizing many proofs against one N can skip it after the first
// check.
func (p *Proof) Validate() bool {
	if p.Modulus == nil || p.Base == nil || p.Cap == nil {
		return false
	}
	return bigint.Coprime(p.Modulus, p.Base) && bigint.Coprime(p.Modulus, p.Cap)
}

// Verify checks a Wesolowski proof against the equation
// y ≡ π^ℓ · g^r (mod N), where r = 2^T mod ℓ. See DESIGN.md for the
// derivation of this remainder term.
func Verify(p *Proof) error {
	if p == nil || p.Modulus == nil || p.Base == nil || p.Cap == nil || p.Pi == nil || p.Output.Value == nil {
		return ErrProofStructurallyInvalid
	}
	n := p.Modulus
	if p.Pi.Sign() <= 0 || p.Pi.Cmp(n) >= 0 {
		return ErrProofStructurallyInvalid
	}
	if p.Base.Sign() <= 0 || p.Base.Cmp(n) >= 0 {
		return ErrProofStructurallyInvalid
	}
	if p.Cap.Sign() <= 0 {
		return ErrProofStructurallyInvalid
	}
	if n.Sign() == 0 {
		return ErrProofStructurallyInvalid
	}

	r := powerOfTwoModL(p.Output.Iterations, p.Cap)

	piToL := bigint.PowMod(p.Pi, p.Cap, n)
	gToR := bigint.PowMod(p.Base, r, n)
	lhs := bigint.MulMod(piToL, gToR, n)

	if lhs.Cmp(new(big.Int).Mod(p.Output.Value, n)) != 0 {
		return ErrVerificationFailed
	}
	return nil
}
