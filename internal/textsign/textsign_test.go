package textsign

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/codec"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/source"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func withStdin(t *testing.T, content string) {
	t.Helper()
	orig := source.Stdin
	source.Stdin = strings.NewReader(content)
	t.Cleanup(func() { source.Stdin = orig })
}

func generateTo(t *testing.T, dir string, alg crypto.Algorithm) []string {
	t.Helper()
	keys, err := Generate(alg)
	require.NoError(t, err)
	paths, err := WriteKeys(dir, alg, keys, false)
	require.NoError(t, err)
	return paths
}

func TestSignVerify_Blake3(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	paths := generateTo(t, dir, crypto.AlgorithmBlake3)
	require.Len(t, paths, 1)
	input := writeFile(t, dir, "msg.txt", []byte("hello world"))

	tag, err := Sign(ctx, input, paths[0], crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.Len(t, tag, 43)

	ok, err := Verify(ctx, input, paths[0], tag, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.True(t, ok)

	other := writeFile(t, dir, "other.txt", []byte("hello world!"))
	ok, err = Verify(ctx, other, paths[0], tag, crypto.AlgorithmBlake3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_Blake3GoldenValue(t *testing.T) {
	dir := t.TempDir()
	key := writeFile(t, dir, "zero.key", make([]byte, 32))
	input := writeFile(t, dir, "msg.txt", []byte("hello world"))

	tag, err := Sign(context.Background(), input, key, crypto.AlgorithmBlake3)
	require.NoError(t, err)

	raw, err := codec.DecodeTag(tag)
	require.NoError(t, err)
	assert.Equal(t, "f70d67530338246a6522eae9daad92c0dfd4bcf4e511602d96e9afd1d2210479", hex.EncodeToString(raw))
}

func TestSignVerify_Ed25519(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	paths := generateTo(t, dir, crypto.AlgorithmEd25519)
	require.Len(t, paths, 2)
	assert.Equal(t, "ed25519.sk", filepath.Base(paths[0]))
	assert.Equal(t, "ed25519.pk", filepath.Base(paths[1]))

	withStdin(t, "")
	tag, err := Sign(ctx, "-", paths[0], crypto.AlgorithmEd25519)
	require.NoError(t, err)
	assert.Len(t, tag, 86)

	withStdin(t, "")
	ok, err := Verify(ctx, "-", paths[1], tag, crypto.AlgorithmEd25519)
	require.NoError(t, err)
	assert.True(t, ok)

	otherDir := t.TempDir()
	otherPaths := generateTo(t, otherDir, crypto.AlgorithmEd25519)
	withStdin(t, "")
	ok, err = Verify(ctx, "-", otherPaths[1], tag, crypto.AlgorithmEd25519)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_CrossAlgorithmIsFormatError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b3 := generateTo(t, dir, crypto.AlgorithmBlake3)
	ed := generateTo(t, dir, crypto.AlgorithmEd25519)
	input := writeFile(t, dir, "msg.txt", []byte("payload"))

	b3Tag, err := Sign(ctx, input, b3[0], crypto.AlgorithmBlake3)
	require.NoError(t, err)
	_, err = Verify(ctx, input, ed[1], b3Tag, crypto.AlgorithmEd25519)
	require.ErrorIs(t, err, errors.ErrSignatureFormat)

	edTag, err := Sign(ctx, input, ed[0], crypto.AlgorithmEd25519)
	require.NoError(t, err)
	_, err = Verify(ctx, input, b3[0], edTag, crypto.AlgorithmBlake3)
	require.ErrorIs(t, err, errors.ErrSignatureFormat)
}

func TestVerify_63ByteTag(t *testing.T) {
	dir := t.TempDir()
	ed := generateTo(t, dir, crypto.AlgorithmEd25519)
	input := writeFile(t, dir, "msg.txt", []byte("payload"))

	_, err := Verify(context.Background(), input, ed[1], codec.EncodeTag(make([]byte, 63)), crypto.AlgorithmEd25519)
	assert.ErrorIs(t, err, errors.ErrSignatureFormat)
}

func TestVerify_BadTagDoesNotConsumeStdin(t *testing.T) {
	dir := t.TempDir()
	key := writeFile(t, dir, "k", bytes.Repeat([]byte{1}, 32))
	stdin := strings.NewReader("untouched")
	orig := source.Stdin
	source.Stdin = stdin
	t.Cleanup(func() { source.Stdin = orig })

	_, err := Verify(context.Background(), "-", key, "***", crypto.AlgorithmBlake3)
	require.ErrorIs(t, err, errors.ErrTagDecode)
	assert.Equal(t, len("untouched"), stdin.Len())
}

func TestDesignators(t *testing.T) {
	ctx := context.Background()

	_, err := Sign(ctx, "-", "-", crypto.AlgorithmBlake3)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = Verify(ctx, "-", "-", "AAAA", crypto.AlgorithmBlake3)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	missing := filepath.Join(t.TempDir(), "missing")
	_, err = Sign(ctx, missing, missing, crypto.AlgorithmBlake3)
	require.ErrorIs(t, err, errors.ErrFileNotFound)
}

func TestSign_ShortKey(t *testing.T) {
	dir := t.TempDir()
	key := writeFile(t, dir, "short", []byte("too short"))
	input := writeFile(t, dir, "msg", []byte("x"))

	for _, alg := range []crypto.Algorithm{crypto.AlgorithmBlake3, crypto.AlgorithmEd25519} {
		_, err := Sign(context.Background(), input, key, alg)
		assert.ErrorIs(t, err, errors.ErrKeyFormat, alg.String())
	}
}

func TestUnsupportedAlgorithm(t *testing.T) {
	var bogus crypto.Algorithm = 99

	_, err := Generate(bogus)
	require.ErrorIs(t, err, errors.ErrUnsupportedAlgorithm)
	_, err = NewSigner(bogus, make([]byte, 32))
	require.ErrorIs(t, err, errors.ErrUnsupportedAlgorithm)
	_, err = NewVerifier(bogus, make([]byte, 32))
	require.ErrorIs(t, err, errors.ErrUnsupportedAlgorithm)
	_, err = KeyFileNames(bogus)
	require.ErrorIs(t, err, errors.ErrUnsupportedAlgorithm)
}
