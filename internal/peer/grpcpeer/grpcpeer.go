// Package grpcpeer is the gRPC-flavored counterpart to
// internal/peer/httppeer. It stands up a real *grpc.Server but — absent
// a protoc/protoc-gen-go toolchain — hand-writes plain Go
// request/response structs in place of generated proto messages.
package grpcpeer

import (
	"context"
	"fmt"
	"math/big"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vdfproof/internal/vdf"
)

// CapRequest and ProofResponse stand in for proto-generated messages;
// see the package doc comment.
type CapRequest struct {
	Cap string
}

type ProofResponse struct {
	Proof *vdf.Proof
}

// Service implements the single-session cap/proof handshake over gRPC.
type Service struct {
	mu      sync.Mutex
	capIn   chan<- *big.Int
	proofCh <-chan vdf.RunResult
	capSent bool
}

// NewService wraps an already-running session's channels.
func NewService(capIn chan<- *big.Int, proofOut <-chan vdf.RunResult) *Service {
	return &Service{capIn: capIn, proofCh: proofOut}
}

// SubmitCap delivers the verifier-chosen prime to the prover. A cap
// can be submitted at most once per session; a second call is rejected.
func (s *Service) SubmitCap(ctx context.Context, req *CapRequest) (*emptyResponse, error) {
	l, ok := new(big.Int).SetString(req.Cap, 10)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "cap is not a valid decimal integer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capSent {
		return nil, status.Error(codes.FailedPrecondition, "cap already submitted for this session")
	}
	select {
	case s.capIn <- l:
		s.capSent = true
		return &emptyResponse{}, nil
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	}
}

// AwaitProof blocks until the prover emits its result.
func (s *Service) AwaitProof(ctx context.Context, req *emptyRequest) (*ProofResponse, error) {
	select {
	case result, ok := <-s.proofCh:
		if !ok {
			return nil, status.Error(codes.Internal, "session ended without emitting a result")
		}
		if result.Err != nil {
			return nil, status.Error(codes.InvalidArgument, result.Err.Error())
		}
		return &ProofResponse{Proof: result.Proof}, nil
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	}
}

type emptyRequest struct{}
type emptyResponse struct{}

// NewServer builds a *grpc.Server with no service registered: svc is not
// attached to it, since no generated RegisterXServer stub is available,
// so the server answers every call with codes.Unimplemented. Service's
// methods are reachable only as direct Go calls.
func NewServer(svc *Service) *grpc.Server {
	server := grpc.NewServer()
	_ = svc // would be passed to a generated RegisterXServer(server, svc)
	return server
}

// Serve starts listening on addr and blocks until the server stops.
func Serve(addr string, server *grpc.Server) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpcpeer: failed to listen on %s: %w", addr, err)
	}
	return server.Serve(listener)
}
