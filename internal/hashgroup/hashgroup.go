// Package hashgroup deterministically maps an arbitrary byte string into
// an RSA group element, hashing with SHA3-512 and reducing modulo N,
// retrying with an incrementing suffix whenever the reduced result
// lands on a degenerate value (0 or 1).
package hashgroup

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// HashToGroup deterministically maps s into [2, N-1]. The same (s, N)
// pair always yields the same result.
func HashToGroup(s []byte, n *big.Int) *big.Int {
	suffix := uint64(0)
	for {
		digest := hash(s, suffix)
		h := new(big.Int).SetBytes(digest)
		h.Mod(h, n)
		if h.Cmp(big.NewInt(1)) > 0 {
			return h
		}
		suffix++
	}
}

func hash(s []byte, suffix uint64) []byte {
	h := sha3.New512()
	h.Write(s)
	if suffix > 0 {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], suffix)
		h.Write([]byte("hashgroup-retry"))
		h.Write(buf[:])
	}
	return h.Sum(nil)
}
