// Package vdf implements the Wesolowski verifiable delay function: a
// sequential-squaring prover with asynchronous cap injection, its
// proof constructor, and the verification equation.
package vdf

import (
	"encoding/binary"
	"errors"
	"math/big"
)

// Errors of the VDF subsystem. ErrProofStructurallyInvalid and
// ErrVerificationFailed are returned by Verify; ErrInvalidCap is the
// worker-side error carried in RunResult.Err.
var (
	// ErrProofStructurallyInvalid is returned by Verify when a
	// proof fails its structural bounds (π >= N, zero modulus/base/cap).
	ErrProofStructurallyInvalid = errors.New("vdf: proof fails structural bounds")

	// ErrVerificationFailed is returned when the Wesolowski equation
	// does not hold.
	ErrVerificationFailed = errors.New("vdf: verification equation does not hold")

	// ErrInvalidCap is emitted by the worker when the supplied or
	// generated cap is not a safe prime, or isn't coprime to N.
	ErrInvalidCap = errors.New("vdf: cap is not a safe prime coprime to the modulus")
)

// Result is the output of the sequential-squaring loop: the final value
// and the iteration count at termination.
type Result struct {
	Value      *big.Int `json:"value"`
	Iterations uint64   `json:"iterations"`
}

// Compare orders results by Iterations; ties are broken by Value.
func (r Result) Compare(other Result) int {
	if r.Iterations != other.Iterations {
		if r.Iterations < other.Iterations {
			return -1
		}
		return 1
	}
	return r.Value.Cmp(other.Value)
}

// Equal reports field-by-field equality.
func (r Result) Equal(other Result) bool {
	return r.Iterations == other.Iterations && r.Value.Cmp(other.Value) == 0
}

// Proof is a Wesolowski VDF proof: the modulus N, base g, output y and
// iteration count T (carried together inside Output), cap ℓ, and the
// proof element π.
type Proof struct {
	Modulus *big.Int `json:"modulus"`
	Base    *big.Int `json:"base"`
	Output  Result   `json:"output"`
	Cap     *big.Int `json:"cap"`
	Pi      *big.Int `json:"proof"`
}

// Encode serializes a proof in the field order (Modulus, Base,
// Output.Value, Output.Iterations, Cap, Pi): each big integer as a 4-byte
// big-endian length followed by its big-endian bytes, and Iterations as a
// fixed 8-byte big-endian value.
func (p *Proof) Encode() []byte {
	var buf []byte
	buf = appendBigInt(buf, p.Modulus)
	buf = appendBigInt(buf, p.Base)
	buf = appendBigInt(buf, p.Output.Value)
	var iterBuf [8]byte
	binary.BigEndian.PutUint64(iterBuf[:], p.Output.Iterations)
	buf = append(buf, iterBuf[:]...)
	buf = appendBigInt(buf, p.Cap)
	buf = appendBigInt(buf, p.Pi)
	return buf
}

// DecodeProof deserializes a proof produced by Encode.
func DecodeProof(data []byte) (*Proof, error) {
	p := &Proof{Output: Result{}}
	rest := data

	var err error
	if p.Modulus, rest, err = readBigInt(rest); err != nil {
		return nil, err
	}
	if p.Base, rest, err = readBigInt(rest); err != nil {
		return nil, err
	}
	if p.Output.Value, rest, err = readBigInt(rest); err != nil {
		return nil, err
	}
	if len(rest) < 8 {
		return nil, errors.New("vdf: truncated proof (iterations)")
	}
	p.Output.Iterations = binary.BigEndian.Uint64(rest[:8])
	rest = rest[8:]
	if p.Cap, rest, err = readBigInt(rest); err != nil {
		return nil, err
	}
	if p.Pi, _, err = readBigInt(rest); err != nil {
		return nil, err
	}
	return p, nil
}

func appendBigInt(buf []byte, v *big.Int) []byte {
	b := v.Bytes()
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, b...)
}

func readBigInt(data []byte) (*big.Int, []byte, error) {
	if len(data) < 4 {
		return nil, nil, errors.New("vdf: truncated proof (length prefix)")
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < n {
		return nil, nil, errors.New("vdf: truncated proof (value)")
	}
	v := new(big.Int).SetBytes(data[:n])
	return v, data[n:], nil
}
