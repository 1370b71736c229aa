package vdf

import (
	"log"
	"math/big"

	"vdfproof/internal/bigint"
	"vdfproof/internal/primes"
)

// defaultCapBits is the bit length of a cap generated internally by the
// worker, either because T_max was reached with no cap supplied, or
// because a session is constructed without a pre-installed cap and none
// arrives in time.
const defaultCapBits = 128

// Session holds the group parameters and time budget for one VDF run.
// N, G and TMax are captured by value at Run time and never mutated;
// a Session is good for exactly one Run.
type Session struct {
	N    *big.Int
	G    *big.Int
	TMax uint64

	// Cap, if non-nil, is pre-installed: the worker uses it at T_max
	// instead of generating a fresh one. A cap that arrives on the cap
	// channel before T_max still takes priority over it.
	Cap *big.Int
}

// NewSession constructs a session with the given RSA modulus, base and
// iteration bound. Use WithCap to pre-install a cap.
func NewSession(n, g *big.Int, tMax uint64) *Session {
	return &Session{N: n, G: g, TMax: tMax}
}

// WithCap pre-installs a safe-prime cap, returning the session for
// chaining.
func (s *Session) WithCap(l *big.Int) *Session {
	s.Cap = l
	return s
}

// RunResult is the single message a worker ever emits on its
// proof-output channel: either Proof is set, or Err is ErrInvalidCap.
type RunResult struct {
	Proof *Proof
	Err   error
}

// Run spawns the worker goroutine and returns two unidirectional
// channels: capIn accepts at most one cap, and proofOut emits exactly
// one RunResult before being closed. The worker never blocks on the cap
// channel; it polls non-blockingly once per iteration so a late-arriving
// cap is picked up within one squaring's latency.
func (s *Session) Run() (capIn chan<- *big.Int, proofOut <-chan RunResult) {
	capCh := make(chan *big.Int, 1)
	outCh := make(chan RunResult, 1)

	worker := *s
	go worker.run(capCh, outCh)

	return capCh, outCh
}

func (s *Session) run(capCh chan *big.Int, outCh chan RunResult) {
	defer s.safeClose(outCh)

	y := new(big.Int).Set(s.G)
	var t uint64

	for {
		if t == s.TMax {
			l, err := s.resolveCap(nil)
			s.finalize(outCh, y, t, l, err)
			return
		}

		select {
		case l, ok := <-capCh:
			if ok {
				resolved, err := s.resolveCap(l)
				s.finalize(outCh, y, t, resolved, err)
				return
			}
			// Channel closed with no cap sent: treated as the caller
			// dropping its end without cancelling; the worker keeps
			// running to T_max regardless.
		default:
		}

		y = bigint.MulMod(y, y, s.N)
		t++
	}
}

// resolveCap decides which cap to use: a cap received over the channel
// takes priority, then any pre-installed Session.Cap, then a freshly
// generated safe prime. Returns an error if the chosen cap fails
// validation.
func (s *Session) resolveCap(received *big.Int) (*big.Int, error) {
	l := received
	if l == nil {
		l = s.Cap
	}
	if l == nil {
		fresh, err := primes.GenerateSafePrime(defaultCapBits)
		if err != nil {
			return nil, err
		}
		l = fresh
	}

	if !primes.IsSafePrime(l) {
		return nil, ErrInvalidCap
	}
	if l.Cmp(big.NewInt(1)) <= 0 || !bigint.Coprime(s.N, l) {
		return nil, ErrInvalidCap
	}
	return l, nil
}

func (s *Session) finalize(outCh chan RunResult, y *big.Int, t uint64, l *big.Int, capErr error) {
	if capErr != nil {
		outCh <- RunResult{Err: ErrInvalidCap}
		return
	}

	pi := constructProof(s.N, s.G, l, t)

	outCh <- RunResult{Proof: &Proof{
		Modulus: s.N,
		Base:    s.G,
		Output:  Result{Value: y, Iterations: t},
		Cap:     l,
		Pi:      pi,
	}}
}

// safeClose guards against a panic if the caller has already dropped
// its receiver and closed/abandoned outCh; the condition is logged and
// not otherwise observable by the caller.
func (s *Session) safeClose(outCh chan RunResult) {
	if r := recover(); r != nil {
		log.Printf("vdf: worker channel closed before completion: %v", r)
	}
	close(outCh)
}
