// Package primes generates and tests safe primes: primes p such that
// (p-1)/2 is also prime. Safe primes are the cap ℓ a peer supplies to
// freeze a VDF computation.
package primes

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrGenerationFailed is returned if a safe prime could not be found
// within a bounded number of attempts. In practice this should never
// trigger for bit lengths used by this module.
var ErrGenerationFailed = errors.New("primes: failed to generate safe prime within attempt budget")

// millerRabinRounds is the number of Miller-Rabin rounds used by the
// explicit IsSafePrime check on caller-supplied values; crypto/rand.Prime
// performs its own internal rounds when generating a fresh prime.
const millerRabinRounds = 20

// maxAttempts bounds safe-prime search; (p-1)/2 prime is roughly a
// 1-in-ln(p) event on top of p itself being prime, so a few thousand
// candidates is comfortably enough at 128 bits.
const maxAttempts = 1 << 16

// GenerateSafePrime returns a random safe prime of the given bit length:
// a prime ℓ such that (ℓ-1)/2 is also prime.
func GenerateSafePrime(bits int) (*big.Int, error) {
	if bits < 3 {
		return nil, errors.New("primes: bit length too small for a safe prime")
	}
	one := big.NewInt(1)
	two := big.NewInt(2)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, err
		}
		// l = 2q + 1
		l := new(big.Int).Mul(q, two)
		l.Add(l, one)
		if l.BitLen() != bits {
			continue
		}
		if l.ProbablyPrime(millerRabinRounds) {
			return l, nil
		}
	}
	return nil, ErrGenerationFailed
}

// IsSafePrime reports whether l is prime and (l-1)/2 is also prime.
func IsSafePrime(l *big.Int) bool {
	if l == nil || l.Sign() <= 0 {
		return false
	}
	if l.Cmp(big.NewInt(2)) <= 0 {
		return false
	}
	if !l.ProbablyPrime(millerRabinRounds) {
		return false
	}
	q := new(big.Int).Sub(l, big.NewInt(1))
	q.Rsh(q, 1)
	return q.ProbablyPrime(millerRabinRounds)
}
