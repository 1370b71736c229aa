// Package calibrate implements a bounded-time self-calibration
// procedure: measure how many squarings this host can perform in a
// wall-clock budget, so a caller can convert "give me a proof of
// latency for about N milliseconds" into a T_max.
package calibrate

import (
	"math"
	"math/big"
	"time"

	"vdfproof/internal/primes"
	"vdfproof/internal/vdf"
)

const calibrationCapBits = 128

// EstimateUpperBound starts a session with a practically unbounded
// T_max, sleeps for the given duration, then sends a freshly generated
// safe-prime cap. It returns the iterations the emitted proof reports,
// which the caller should adopt as its session's T_max.
func EstimateUpperBound(n, g *big.Int, budget time.Duration) (uint64, error) {
	session := vdf.NewSession(n, g, math.MaxUint64)
	capIn, proofOut := session.Run()

	time.Sleep(budget)

	cap, err := primes.GenerateSafePrime(calibrationCapBits)
	if err != nil {
		return 0, err
	}
	capIn <- cap

	result := <-proofOut
	if result.Err != nil {
		return 0, result.Err
	}
	return result.Proof.Output.Iterations, nil
}
