// Package textsign routes text sign, verify, and key generation requests to
// the backend for the selected algorithm.
package textsign

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/crypto/keyedhash"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/logging"
	"github.com/mrz1836/rcli/internal/source"
)

// NewSigner builds the signer for alg from raw key bytes.
func NewSigner(alg crypto.Algorithm, key []byte) (crypto.TextSigner, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return keyedhash.New(key)
	case crypto.AlgorithmEd25519:
		return native.NewSigner(key)
	default:
		return nil, unsupported(alg)
	}
}

// NewVerifier builds the verifier for alg from raw key bytes.
// For ed25519 key is the public key.
func NewVerifier(alg crypto.Algorithm, key []byte) (crypto.TextVerifier, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return keyedhash.New(key)
	case crypto.AlgorithmEd25519:
		return native.NewVerifier(key)
	default:
		return nil, unsupported(alg)
	}
}

// Generate returns fresh key material for alg.
// blake3 yields one key; ed25519 yields [signing key, verifying key].
func Generate(alg crypto.Algorithm) ([][]byte, error) {
	gen, err := generatorFor(alg)
	if err != nil {
		return nil, err
	}
	keys, err := gen()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("component", "textsign").
		Str("algorithm", alg.String()).
		Int("keys", len(keys)).
		Msg("generated key material")
	return keys, nil
}

func generatorFor(alg crypto.Algorithm) (crypto.KeyGenerator, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		return keyedhash.Generate, nil
	case crypto.AlgorithmEd25519:
		return native.Generate, nil
	default:
		return nil, unsupported(alg)
	}
}

// Sign reads the key and input named by the designators and returns the
// encoded tag.
func Sign(ctx context.Context, input, keySource string, alg crypto.Algorithm) (string, error) {
	if err := checkDesignators(input, keySource); err != nil {
		return "", err
	}
	key, err := source.ReadAll(keySource)
	if err != nil {
		return "", err
	}
	signer, err := NewSigner(alg, key)
	if err != nil {
		return "", err
	}

	r, err := source.Open(input)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	cr := &countingReader{r: r}
	tag, err := signer.Sign(ctx, cr)
	if err != nil {
		return "", err
	}

	logger(ctx).Debug().
		Str("algorithm", alg.String()).
		Int64("input_bytes", cr.n).
		Int("tag_bytes", len(tag)).
		Str("key_source", logging.SafeValue("key_source", keySource)).
		Msg("signed input")
	return codec.EncodeTag(tag), nil
}

// Verify reports whether encodedTag is valid for the input under the key.
// The tag is decoded before either stream is read.
func Verify(ctx context.Context, input, keySource, encodedTag string, alg crypto.Algorithm) (bool, error) {
	if err := checkDesignators(input, keySource); err != nil {
		return false, err
	}
	tag, err := codec.DecodeTag(encodedTag)
	if err != nil {
		return false, err
	}
	key, err := source.ReadAll(keySource)
	if err != nil {
		return false, err
	}
	verifier, err := NewVerifier(alg, key)
	if err != nil {
		return false, err
	}

	r, err := source.Open(input)
	if err != nil {
		return false, err
	}
	defer func() { _ = r.Close() }()

	cr := &countingReader{r: r}
	ok, err := verifier.Verify(ctx, cr, tag)
	if err != nil {
		return false, err
	}

	logger(ctx).Debug().
		Str("algorithm", alg.String()).
		Int64("input_bytes", cr.n).
		Bool("valid", ok).
		Str("key_source", logging.SafeValue("key_source", keySource)).
		Msg("verified input")
	return ok, nil
}

func checkDesignators(input, keySource string) error {
	if source.IsStdin(input) && source.IsStdin(keySource) {
		return fmt.Errorf("%w: input and key cannot both be read from stdin", errors.ErrInvalidArgument)
	}
	return nil
}

func unsupported(alg crypto.Algorithm) error {
	return fmt.Errorf("%w: %s", errors.ErrUnsupportedAlgorithm, alg)
}

func logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("component", "textsign").Logger()
	return &l
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
