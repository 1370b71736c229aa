package calibrate

import (
	"math/big"
	"testing"
	"time"

	"vdfproof/internal/hashgroup"
)

func TestEstimateUpperBoundReturnsPositiveIterations(t *testing.T) {
	n := big.NewInt(104729)
	g := hashgroup.HashToGroup([]byte("calibration"), n)

	tMax, err := EstimateUpperBound(n, g, 30*time.Millisecond)
	if err != nil {
		t.Fatalf("EstimateUpperBound failed: %v", err)
	}
	if tMax == 0 {
		t.Error("expected a positive iteration count from a 30ms budget")
	}
}
