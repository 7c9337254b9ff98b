// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
)

// Compile-time interface checks.
var (
	_ crypto.TextSigner   = (*Signer)(nil)
	_ crypto.TextVerifier = (*Verifier)(nil)
)

// Signer holds an Ed25519 private key derived from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner builds a Signer from a 32-byte seed. Longer input is truncated;
// fewer than 32 bytes fails with errors.ErrKeyFormat.
func NewSigner(seed []byte) (*Signer, error) {
	k, err := crypto.CheckKeyLength(seed)
	if err != nil {
		return nil, err
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(k)}, nil
}

// Sign reads r to EOF and returns a 64-byte Ed25519 signature.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	buf, err := crypto.ReadInput(r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.privKey, buf), nil
}

// Public returns the 32-byte public key matching the signer.
func (s *Signer) Public() []byte {
	pub, _ := s.privKey.Public().(ed25519.PublicKey)
	return []byte(pub)
}

// Verifier returns a Verifier for the signer's public key.
func (s *Signer) Verifier() *Verifier {
	return &Verifier{pubKey: ed25519.PublicKey(s.Public())}
}

// Verifier holds an Ed25519 public key.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier builds a Verifier from the first 32 bytes of key.
// Fewer than 32 bytes fails with errors.ErrKeyFormat; bytes that do not
// decode to a curve point fail with errors.ErrInvalidKey.
func NewVerifier(key []byte) (*Verifier, error) {
	k, err := crypto.CheckKeyLength(key)
	if err != nil {
		return nil, err
	}
	if _, err := new(edwards25519.Point).SetBytes(k); err != nil {
		return nil, fmt.Errorf("%w: not a valid ed25519 public key: %v", errors.ErrInvalidKey, err)
	}
	pub := make(ed25519.PublicKey, constants.KeySize)
	copy(pub, k)
	return &Verifier{pubKey: pub}, nil
}

// Verify reads r to EOF and reports whether tag is a valid signature over it.
// tag must be exactly 64 bytes, otherwise errors.ErrSignatureFormat is returned.
func (v *Verifier) Verify(ctx context.Context, r io.Reader, tag []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}
	if err := crypto.CheckTagLength(tag, constants.Ed25519TagSize); err != nil {
		return false, err
	}
	buf, err := crypto.ReadInput(r)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(v.pubKey, buf, tag), nil
}

// Generate returns [seed, public key] for a fresh key pair from crypto/rand.
func Generate() ([][]byte, error) {
	return GenerateFrom(rand.Reader)
}

// GenerateFrom is Generate with an explicit entropy source.
func GenerateFrom(src io.Reader) ([][]byte, error) {
	pub, priv, err := ed25519.GenerateKey(src)
	if err != nil {
		return nil, fmt.Errorf("%w: generating ed25519 key: %v", errors.ErrGeneration, err)
	}
	return [][]byte{priv.Seed(), []byte(pub)}, nil
}
