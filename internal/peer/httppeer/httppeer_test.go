package httppeer

import (
	"context"
	"math/big"
	"net/http/httptest"
	"testing"
	"time"

	"vdfproof/internal/hashgroup"
	"vdfproof/internal/vdf"
)

func TestCapAndProofRoundTrip(t *testing.T) {
	n := big.NewInt(91)
	g := hashgroup.HashToGroup([]byte("httppeer-test"), n)

	session := vdf.NewSession(n, g, 100_000_000)
	capIn, proofOut := session.Run()

	server := NewServer(capIn, proofOut)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	client := NewClient(ts.URL)

	cap := big.NewInt(11) // safe prime, coprime to 91
	if err := client.SendCap(context.Background(), cap); err != nil {
		t.Fatalf("SendCap failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proof, err := client.ReceiveProof(ctx)
	if err != nil {
		t.Fatalf("ReceiveProof failed: %v", err)
	}

	if err := vdf.Verify(proof); err != nil {
		t.Errorf("received proof does not verify: %v", err)
	}
	if proof.Cap.Cmp(cap) != 0 {
		t.Errorf("proof cap = %v, want %v", proof.Cap, cap)
	}
}
