package keyedhash

import (
	"bytes"
	"context"
	"encoding/hex"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/genpass"
)

// helloWorldZeroKey is BLAKE3 keyed_hash(key=32 zero bytes, "hello world").
const helloWorldZeroKey = "f70d67530338246a6522eae9daad92c0dfd4bcf4e511602d96e9afd1d2210479"

func newTestSigner(t *testing.T, key []byte) *Signer {
	t.Helper()
	s, err := New(key)
	require.NoError(t, err)
	return s
}

func sign(t *testing.T, s *Signer, msg []byte) []byte {
	t.Helper()
	tag, err := s.Sign(context.Background(), bytes.NewReader(msg))
	require.NoError(t, err)
	return tag
}

func verify(t *testing.T, s *Signer, msg, tag []byte) bool {
	t.Helper()
	ok, err := s.Verify(context.Background(), bytes.NewReader(msg), tag)
	require.NoError(t, err)
	return ok
}

func TestSigner_GoldenValue(t *testing.T) {
	s := newTestSigner(t, make([]byte, 32))
	msg := []byte("hello world")

	tag := sign(t, s, msg)
	assert.Equal(t, helloWorldZeroKey, hex.EncodeToString(tag))
	assert.True(t, verify(t, s, msg, tag))

	for i := 0; i < len(tag)*8; i++ {
		flipped := bytes.Clone(tag)
		flipped[i/8] ^= 1 << (i % 8)
		assert.False(t, verify(t, s, msg, flipped), "bit %d flipped should not verify", i)
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	s := newTestSigner(t, []byte("0123456789abcdefghijklmnopqrstuv"))

	tests := []struct {
		name string
		msg  []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("hi")},
		{"multi chunk", bytes.Repeat([]byte("rcli "), 1000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag := sign(t, s, tc.msg)
			assert.Len(t, tag, 32)
			assert.True(t, verify(t, s, tc.msg, tag))
		})
	}
}

func TestSigner_TamperSensitivity(t *testing.T) {
	s := newTestSigner(t, bytes.Repeat([]byte{7}, 32))
	msg := []byte("the quick brown fox")
	tag := sign(t, s, msg)

	for i := range msg {
		tampered := bytes.Clone(msg)
		tampered[i]++
		assert.False(t, verify(t, s, tampered, tag), "byte %d mutated should not verify", i)
	}

	assert.False(t, verify(t, s, append(bytes.Clone(msg), '!'), tag), "appended byte should not verify")
}

func TestSigner_KeySensitivity(t *testing.T) {
	msg := []byte("same message")
	s1 := newTestSigner(t, bytes.Repeat([]byte{1}, 32))
	s2 := newTestSigner(t, bytes.Repeat([]byte{2}, 32))

	tag1 := sign(t, s1, msg)
	tag2 := sign(t, s2, msg)
	assert.NotEqual(t, tag1, tag2)
	assert.False(t, verify(t, s2, msg, tag1))
}

func TestSigner_Deterministic(t *testing.T) {
	s := newTestSigner(t, bytes.Repeat([]byte{9}, 32))
	msg := []byte("deterministic")
	assert.Equal(t, sign(t, s, msg), sign(t, s, msg))
}

func TestNew_KeyLength(t *testing.T) {
	t.Run("truncates to first 32 bytes", func(t *testing.T) {
		key := make([]byte, 32)
		long := append(bytes.Clone(key), []byte("trailing newline\n")...)

		msg := []byte("hello world")
		assert.Equal(t, sign(t, newTestSigner(t, key), msg), sign(t, newTestSigner(t, long), msg))
	})

	for _, n := range []int{0, 16, 31} {
		_, err := New(make([]byte, n))
		assert.ErrorIs(t, err, errors.ErrKeyFormat, "key of %d bytes", n)
	}
}

func TestSigner_VerifyWrongTagLength(t *testing.T) {
	s := newTestSigner(t, make([]byte, 32))

	for _, n := range []int{0, 31, 33, 64} {
		ok, err := s.Verify(context.Background(), strings.NewReader("hello world"), make([]byte, n))
		require.ErrorIs(t, err, errors.ErrSignatureFormat, "tag of %d bytes", n)
		assert.False(t, ok)
	}
}

func TestSigner_CanceledContext(t *testing.T) {
	s := newTestSigner(t, make([]byte, 32))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sign(ctx, strings.NewReader("x"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Verify(ctx, strings.NewReader("x"), make([]byte, 32))
	require.ErrorIs(t, err, context.Canceled)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, stderrors.New("no entropy") }

func TestGenerate(t *testing.T) {
	keys, err := Generate()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Len(t, keys[0], 32)

	s, err := New(keys[0])
	require.NoError(t, err)
	msg := []byte("generated")
	assert.True(t, verify(t, s, msg, sign(t, s, msg)))

	other, err := Generate()
	require.NoError(t, err)
	assert.NotEqual(t, keys[0], other[0])
}

func TestGenerateWith_EntropyFailure(t *testing.T) {
	_, err := GenerateWith(genpass.NewWithSource(brokenReader{}))
	assert.ErrorIs(t, err, errors.ErrGeneration)
}
