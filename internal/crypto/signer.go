// Package crypto defines the text signing contracts shared by rcli's
// algorithm backends and the closed set of supported algorithms.
package crypto

import (
	"context"
	"fmt"
	"io"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Algorithm identifies a signing algorithm family.
type Algorithm int

const (
	// AlgorithmBlake3 is the BLAKE3 keyed hash (shared secret).
	AlgorithmBlake3 Algorithm = iota + 1

	// AlgorithmEd25519 is the Ed25519 digital signature (private sign, public verify).
	AlgorithmEd25519
)

// ParseAlgorithm maps a case-sensitive token to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case constants.FormatBlake3:
		return AlgorithmBlake3, nil
	case constants.FormatEd25519:
		return AlgorithmEd25519, nil
	default:
		return 0, fmt.Errorf("%w: %q must be one of %v", errors.ErrUnsupportedAlgorithm, s, AlgorithmNames())
	}
}

// AlgorithmNames returns the accepted algorithm tokens.
func AlgorithmNames() []string {
	return []string{constants.FormatBlake3, constants.FormatEd25519}
}

// String returns the command-line token for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBlake3:
		return constants.FormatBlake3
	case AlgorithmEd25519:
		return constants.FormatEd25519
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// TagSize returns the raw tag length produced by the algorithm, or 0 if unknown.
func (a Algorithm) TagSize() int {
	switch a {
	case AlgorithmBlake3:
		return constants.Blake3TagSize
	case AlgorithmEd25519:
		return constants.Ed25519TagSize
	default:
		return 0
	}
}

// Set implements pflag.Value so the algorithm can be bound directly to a flag.
func (a *Algorithm) Set(s string) error {
	parsed, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string {
	return "format"
}

// TextSigner produces an authentication tag over a whole input stream.
// Implementations are immutable after construction and safe for concurrent use.
type TextSigner interface {
	// Sign reads r to EOF and returns the raw tag bytes.
	Sign(ctx context.Context, r io.Reader) ([]byte, error)
}

// TextVerifier checks a tag against a whole input stream.
type TextVerifier interface {
	// Verify reads r to EOF and reports whether tag is valid for it.
	// A tag that does not match returns (false, nil); a tag that cannot be
	// checked at all (wrong length) returns errors.ErrSignatureFormat.
	Verify(ctx context.Context, r io.Reader, tag []byte) (bool, error)
}

// KeyGenerator produces fresh key material for one algorithm.
// The returned buffers are ordered; for key pairs index 0 is the private key.
type KeyGenerator func() ([][]byte, error)

// CheckKeyLength returns the first KeySize bytes of key.
// Longer input is truncated; shorter input fails with errors.ErrKeyFormat.
func CheckKeyLength(key []byte) ([]byte, error) {
	if len(key) < constants.KeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", errors.ErrKeyFormat, constants.KeySize, len(key))
	}
	return key[:constants.KeySize], nil
}

// CheckTagLength fails with errors.ErrSignatureFormat unless tag is exactly want bytes.
func CheckTagLength(tag []byte, want int) error {
	if len(tag) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d", errors.ErrSignatureFormat, want, len(tag))
	}
	return nil
}

// ReadInput reads r to EOF.
func ReadInput(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return buf, nil
}
