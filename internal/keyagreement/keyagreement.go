// Package keyagreement implements an X25519 Diffie-Hellman handshake
// whose shared secret seeds the hash-to-group input, so the VDF base is
// unpredictable before a session starts but reproducible by both peers.
package keyagreement

import (
	"crypto/rand"
	"fmt"

	"github.com/cloudflare/circl/dh/x25519"
)

// KeyPair is one party's ephemeral X25519 key pair.
type KeyPair struct {
	Private x25519.Key
	Public  x25519.Key
}

// Generate creates a fresh ephemeral key pair.
func Generate() (*KeyPair, error) {
	kp := &KeyPair{}
	if _, err := rand.Read(kp.Private[:]); err != nil {
		return nil, fmt.Errorf("keyagreement: failed to generate private key: %w", err)
	}
	x25519.KeyGen(&kp.Public, &kp.Private)
	return kp, nil
}

// SharedSecret derives the shared secret between this key pair's
// private key and a peer's public key. Both peers, running this with
// their own private key and the other's public key, arrive at the same
// bytes.
func SharedSecret(own *KeyPair, peerPublic x25519.Key) ([]byte, error) {
	var shared x25519.Key
	ok := x25519.Shared(&shared, &own.Private, &peerPublic)
	if !ok {
		return nil, fmt.Errorf("keyagreement: peer public key produced a degenerate shared secret")
	}
	return shared[:], nil
}
