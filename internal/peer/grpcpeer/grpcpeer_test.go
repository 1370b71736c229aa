package grpcpeer

import (
	"context"
	"math/big"
	"testing"

	"vdfproof/internal/hashgroup"
	"vdfproof/internal/vdf"
)

func TestServiceCapAndProofHandshake(t *testing.T) {
	n := big.NewInt(91)
	g := hashgroup.HashToGroup([]byte("grpcpeer-test"), n)

	session := vdf.NewSession(n, g, 100_000_000)
	capIn, proofOut := session.Run()

	svc := NewService(capIn, proofOut)

	if _, err := svc.SubmitCap(context.Background(), &CapRequest{Cap: "11"}); err != nil {
		t.Fatalf("SubmitCap failed: %v", err)
	}

	if _, err := svc.SubmitCap(context.Background(), &CapRequest{Cap: "13"}); err == nil {
		t.Error("expected second SubmitCap to be rejected")
	}

	resp, err := svc.AwaitProof(context.Background(), &emptyRequest{})
	if err != nil {
		t.Fatalf("AwaitProof failed: %v", err)
	}

	if err := vdf.Verify(resp.Proof); err != nil {
		t.Errorf("proof does not verify: %v", err)
	}
}

func TestSubmitCapRejectsGarbage(t *testing.T) {
	n := big.NewInt(91)
	g := hashgroup.HashToGroup([]byte("grpcpeer-garbage"), n)

	session := vdf.NewSession(n, g, 100_000_000)
	capIn, proofOut := session.Run()
	svc := NewService(capIn, proofOut)
	_ = proofOut

	if _, err := svc.SubmitCap(context.Background(), &CapRequest{Cap: "not-a-number"}); err == nil {
		t.Error("expected SubmitCap to reject a non-numeric cap")
	}
}
