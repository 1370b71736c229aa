// Package httppeer is a demonstration transport for shipping a cap from
// a verifier to a prover and a proof back, over plain HTTP.
package httppeer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gorilla/mux"

	"vdfproof/internal/vdf"
)

// Server wraps a running VDF session behind two routes: POST /cap
// accepts the verifier-chosen prime, GET /proof blocks (subject to the
// request context) until the session's proof is ready.
type Server struct {
	router  *mux.Router
	capIn   chan<- *big.Int
	proofCh <-chan vdf.RunResult
}

// NewServer builds an HTTP server around an already-running session's
// channels (as returned by Session.Run).
func NewServer(capIn chan<- *big.Int, proofOut <-chan vdf.RunResult) *Server {
	s := &Server{capIn: capIn, proofCh: proofOut}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/cap", s.handleCap).Methods(http.MethodPost)
	s.router.HandleFunc("/proof", s.handleProof).Methods(http.MethodGet)
	return s
}

// Handler returns the http.Handler to mount, e.g. via http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.router
}

type capRequest struct {
	Cap string `json:"cap"` // decimal string encoding of the prime
}

func (s *Server) handleCap(w http.ResponseWriter, r *http.Request) {
	var req capRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}

	l, ok := new(big.Int).SetString(req.Cap, 10)
	if !ok {
		http.Error(w, "cap is not a valid decimal integer", http.StatusBadRequest)
		return
	}

	select {
	case s.capIn <- l:
		w.WriteHeader(http.StatusAccepted)
	default:
		http.Error(w, "cap already submitted for this session", http.StatusConflict)
	}
}

func (s *Server) handleProof(w http.ResponseWriter, r *http.Request) {
	select {
	case result, ok := <-s.proofCh:
		if !ok {
			http.Error(w, "session ended without emitting a result", http.StatusGone)
			return
		}
		if result.Err != nil {
			http.Error(w, result.Err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result.Proof)
	case <-r.Context().Done():
		http.Error(w, "request cancelled while waiting for proof", http.StatusRequestTimeout)
	}
}

// Client is the verifier-side counterpart: send a cap, then fetch the
// proof once the prover reports it's ready.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client pointed at a Server's base URL
// (e.g. "http://127.0.0.1:8420").
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// SendCap posts the cap to the prover.
func (c *Client) SendCap(ctx context.Context, l *big.Int) error {
	body, err := json.Marshal(capRequest{Cap: l.String()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cap", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httppeer: send cap: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("httppeer: send cap: unexpected status %s", resp.Status)
	}
	return nil
}

// ReceiveProof fetches the proof, blocking server-side until it's ready
// or the context is cancelled.
func (c *Client) ReceiveProof(ctx context.Context) (*vdf.Proof, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/proof", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httppeer: receive proof: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httppeer: receive proof: unexpected status %s", resp.Status)
	}

	proof := &vdf.Proof{}
	if err := json.NewDecoder(resp.Body).Decode(proof); err != nil {
		return nil, fmt.Errorf("httppeer: decode proof: %w", err)
	}
	return proof, nil
}
