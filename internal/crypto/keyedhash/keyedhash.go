// Package keyedhash provides BLAKE3 keyed-hash signing and verification.
//
// A single shared 32-byte key both signs and verifies. Tags are deterministic:
// the same key and input always produce the same 32-byte digest.
package keyedhash

import (
	"context"
	"crypto/subtle"
	"io"

	"github.com/zeebo/blake3"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/genpass"
)

// Compile-time interface checks.
var (
	_ crypto.TextSigner   = (*Signer)(nil)
	_ crypto.TextVerifier = (*Signer)(nil)
)

// Signer holds a BLAKE3 key and implements both crypto.TextSigner and crypto.TextVerifier.
type Signer struct {
	key [constants.KeySize]byte
}

// New builds a Signer from key material. Only the first 32 bytes are used;
// fewer than 32 bytes fails with errors.ErrKeyFormat.
func New(key []byte) (*Signer, error) {
	k, err := crypto.CheckKeyLength(key)
	if err != nil {
		return nil, err
	}
	s := &Signer{}
	copy(s.key[:], k)
	return s, nil
}

// Sign reads r to EOF and returns the 32-byte keyed hash.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	buf, err := crypto.ReadInput(r)
	if err != nil {
		return nil, err
	}
	return s.sum(buf)
}

// Verify recomputes the keyed hash over r and compares it with tag in constant time.
func (s *Signer) Verify(ctx context.Context, r io.Reader, tag []byte) (bool, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return false, err
	}
	if err := crypto.CheckTagLength(tag, constants.Blake3TagSize); err != nil {
		return false, err
	}
	buf, err := crypto.ReadInput(r)
	if err != nil {
		return false, err
	}
	digest, err := s.sum(buf)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(digest, tag) == 1, nil
}

func (s *Signer) sum(buf []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(s.key[:])
	if err != nil {
		// Unreachable: the key is always KeySize bytes.
		return nil, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	_, _ = h.Write(buf)
	return h.Sum(nil), nil
}

// Generate returns a single 32-byte key drawn from the password generator
// with every character class enabled.
func Generate() ([][]byte, error) {
	return GenerateWith(genpass.New())
}

// GenerateWith is Generate with an explicit password generator.
func GenerateWith(g *genpass.Generator) ([][]byte, error) {
	key, err := g.Generate(genpass.AllClasses(constants.KeySize))
	if err != nil {
		return nil, err
	}
	return [][]byte{[]byte(key)}, nil
}
